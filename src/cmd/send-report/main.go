// in case you need to create an entrypoint with multiple subprograms
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"obra-reports/src/pkg/config"
	"obra-reports/src/pkg/email"
	"obra-reports/src/pkg/util"
)

/*
Pick provider and use it to send generated informe PDFs to the recipients.
Attaches every informe_*.pdf found in the output directory (or the single
file given with -pdf).
*/
func sendInformes(subprogram string, flags []string) {
	config.CheckIfEnvVarsPresent(
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION", // amazon ses
		"MAILGUN_DOMAIN", "MAILGUN_API_KEY", // mailgun
		"SENDGRID_API_KEY", // sendgrid
	)

	// common flags
	subprogramCmd := flag.NewFlagSet(subprogram, flag.ExitOnError)
	configPath := subprogramCmd.String("config", "./cfg/config.json", "Path to your configuration file.")

	// custom flags
	provider := subprogramCmd.String("provider", "mailgun", "Provider to use when sending emails")
	senderAddress := subprogramCmd.String("sender", "", "Sender's address")
	recipientAddress := subprogramCmd.String("recipient", "", "Recipient's address (comma separated for several)")
	subject := subprogramCmd.String("subject", "Informes de obra", "Subject of the email")
	pdfPath := subprogramCmd.String("pdf", "", "Path to a single PDF to send. Default is every informe_*.pdf in the output dir")
	dryRun := subprogramCmd.Bool("dry-run", false, "Log what would be sent without sending")

	// parse and init config
	xerr.QuitIfError(subprogramCmd.Parse(flags), "Unable to subprogramCmd.Parse")
	config.InitializeConfig(*configPath)

	util.RequiredFlag(senderAddress, "sender")
	util.RequiredFlag(recipientAddress, "recipient")
	util.RequiredFlag(provider, "provider")
	util.EnsureFlags()

	recipientAddresses := strings.Split(*recipientAddress, ",")

	pdfPaths := resolvePdfPaths(*pdfPath)
	if len(pdfPaths) == 0 {
		tl.Log(tl.Warning, palette.PurpleBold, "No informe PDFs found in '%s'", config.Cfg.OutputDir)
		os.Exit(0)
	}
	tl.Log(tl.Notice1, palette.GreenBold, "Attaching '%d' informe PDFs", len(pdfPaths))

	attachments := make([]email.Attachment, 0, len(pdfPaths))
	for _, path := range pdfPaths {
		contentBytes, readErr := os.ReadFile(path)
		xerr.QuitIfError(readErr, fmt.Sprintf("Unable to read file '%s'", path))

		attachments = append(attachments, email.Attachment{
			Filename:    filepath.Base(path),
			ContentType: "application/pdf",
			Content:     contentBytes,
		})
	}

	textBody := fmt.Sprintf("Se adjuntan %d informes de obra.", len(attachments))
	htmlBody := fmt.Sprintf("<p>Se adjuntan <b>%d</b> informes de obra.</p>", len(attachments))

	// send email here
	sendEmails := !*dryRun
	e := email.SendMessage(email.Provider(*provider), &sendEmails, *senderAddress, recipientAddresses, *subject, textBody, htmlBody, attachments)
	e.QuitIf("error")
}

func resolvePdfPaths(pdfPath string) []string {
	if strings.TrimSpace(pdfPath) != "" {
		return []string{pdfPath}
	}

	pattern := filepath.Join(config.Cfg.OutputDir, "informe_*.pdf")
	matches, globErr := filepath.Glob(pattern)
	xerr.QuitIfError(globErr, fmt.Sprintf("Unable to glob '%s'", pattern))

	sort.Strings(matches)
	return matches
}

func main() {
	// Check if there are enough arguments
	if len(os.Args) < 2 {
		tl.Log(tl.Error, palette.Red, "Usage: %s", "go run src/cmd/send-report/main.go subprogram_name(for example send-informes)")
		os.Exit(1)
	}
	subprogram := os.Args[1]
	flags := os.Args[2:]

	// Switch subprogram based on the first argument
	switch subprogram {
	case "send-informes":
		sendInformes(subprogram, flags)
	default:
		tl.Log(tl.Error, palette.Red, "Unknown subprogram: %s", subprogram)
		os.Exit(1)
	}
}
