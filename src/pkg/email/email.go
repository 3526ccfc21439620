// Package email sends finished reports through a configurable provider.
package email

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// Provider selects the outgoing email service.
type Provider string

const (
	ProviderMailgun  Provider = "mailgun"
	ProviderSendgrid Provider = "sendgrid"
	ProviderSES      Provider = "ses"
)

// Attachment is one file to attach, already read into memory.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

/*
SendMessage sends one email through the selected provider.

sendEmails is the kill switch: nil or false logs the message instead of
sending it, so batch runs can be rehearsed without spamming recipients.
*/
func SendMessage(
	provider Provider, sendEmails *bool, sender string, recipients []string,
	subject string, textBody string, htmlBody string, attachments []Attachment,
) (e *xerr.Error) {
	if sendEmails == nil || !*sendEmails {
		tl.Log(
			tl.Notice, palette.YellowBold, "%s: would send '%s' from '%s' to '%s' (%d attachments)",
			"Dry run", subject, sender, recipients, len(attachments),
		)
		return e
	}

	tl.Log(
		tl.Notice, palette.BlueBold, "%s '%s' via '%s' to '%s'",
		"Sending", subject, provider, recipients,
	)

	switch provider {
	case ProviderMailgun:
		e = sendWithMailgun(sender, recipients, subject, textBody, htmlBody, attachments)
	case ProviderSendgrid:
		e = sendWithSendgrid(sender, recipients, subject, textBody, htmlBody, attachments)
	case ProviderSES:
		e = sendWithSES(sender, recipients, subject, textBody, htmlBody, attachments)
	default:
		err := fmt.Errorf("unknown provider '%s'", provider)
		e = xerr.NewError(err, "select email provider", string(provider))
	}

	if e != nil {
		return e
	}

	tl.Log(tl.Notice1, palette.GreenBold, "%s via '%s'", "Email sent", provider)
	return e
}
