package email

import (
	"context"
	"os"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

const mailgunSendTimeout = 30 * time.Second

// Env vars: MAILGUN_DOMAIN, MAILGUN_API_KEY.
func sendWithMailgun(sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	domain := os.Getenv("MAILGUN_DOMAIN")
	apiKey := os.Getenv("MAILGUN_API_KEY")

	client := mailgun.NewMailgun(domain, apiKey)

	message := mailgun.NewMessage(sender, subject, textBody, recipients...)
	if htmlBody != "" {
		message.SetHTML(htmlBody)
	}
	for _, attachment := range attachments {
		message.AddBufferAttachment(attachment.Filename, attachment.Content)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mailgunSendTimeout)
	defer cancel()

	responseMessage, messageID, sendErr := client.Send(ctx, message)
	if sendErr != nil {
		e = xerr.NewError(sendErr, "send email through Mailgun", domain)
		return e
	}

	tl.Log(tl.Info1, palette.Green, "Mailgun accepted message id '%s' ('%s')", messageID, responseMessage)
	return e
}
