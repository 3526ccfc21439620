package email

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

const sesSendTimeout = 30 * time.Second

// Env vars: AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION.
func sendWithSES(sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	if len(attachments) > 0 {
		// SES simple content cannot carry attachments; use mailgun or
		// sendgrid when mailing the PDFs themselves.
		tl.Log(tl.Warning, palette.PurpleBright, "SES provider ignores '%d' attachments", len(attachments))
	}

	ctx, cancel := context.WithTimeout(context.Background(), sesSendTimeout)
	defer cancel()

	awsCfg, cfgErr := awsconfig.LoadDefaultConfig(ctx)
	if cfgErr != nil {
		e = xerr.NewError(cfgErr, "load AWS configuration", nil)
		return e
	}

	client := sesv2.NewFromConfig(awsCfg)

	body := &types.Body{}
	if textBody != "" {
		body.Text = &types.Content{Data: aws.String(textBody)}
	}
	if htmlBody != "" {
		body.Html = &types.Content{Data: aws.String(htmlBody)}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(sender),
		Destination:      &types.Destination{ToAddresses: recipients},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body:    body,
			},
		},
	}

	output, sendErr := client.SendEmail(ctx, input)
	if sendErr != nil {
		e = xerr.NewError(sendErr, "send email through SES", sender)
		return e
	}

	tl.Log(tl.Info1, palette.Green, "SES accepted message id '%s'", aws.ToString(output.MessageId))
	return e
}
