package email

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// Env vars: SENDGRID_API_KEY.
func sendWithSendgrid(sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", sender))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, recipient := range recipients {
		personalization.AddTos(mail.NewEmail("", recipient))
	}
	message.AddPersonalizations(personalization)

	if textBody != "" {
		message.AddContent(mail.NewContent("text/plain", textBody))
	}
	if htmlBody != "" {
		message.AddContent(mail.NewContent("text/html", htmlBody))
	}

	for _, attachment := range attachments {
		sgAttachment := mail.NewAttachment()
		sgAttachment.SetFilename(attachment.Filename)
		sgAttachment.SetType(attachment.ContentType)
		sgAttachment.SetContent(base64.StdEncoding.EncodeToString(attachment.Content))
		sgAttachment.SetDisposition("attachment")
		message.AddAttachment(sgAttachment)
	}

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))

	response, sendErr := client.Send(message)
	if sendErr != nil {
		e = xerr.NewError(sendErr, "send email through SendGrid", subject)
		return e
	}

	e = checkSendgridResponse(response)
	return e
}

func checkSendgridResponse(response *rest.Response) (e *xerr.Error) {
	if response == nil {
		return e
	}

	if response.StatusCode >= 300 {
		err := fmt.Errorf("status code %d", response.StatusCode)
		e = xerr.NewError(err, "SendGrid rejected the message", response.Body)
		return e
	}

	tl.Log(tl.Info1, palette.Green, "SendGrid accepted the message (status '%d')", response.StatusCode)
	return e
}
