package utils

import (
	"fmt"
	"log"

	"gridset-app/config"
	"gridset-app/models"

	"gopkg.in/gomail.v2"
)

// SendDecisionEmail notifies the requester that their request was decided.
// Mailing is best effort: it is skipped when SMTP is not configured and a
// delivery failure is logged, never surfaced to the approver.
func SendDecisionEmail(request *models.AssetRequest) {
	if config.SMTPHost == "" || request.User.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your asset request for %s was %s", request.Asset.AssetNo, request.Status)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour request for asset %s (%s) has been %s.\n\nGridSet Asset Management",
		request.User.Name, request.Asset.AssetNo, request.Asset.Description, request.Status,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.MailFrom)
	msg.SetHeader("To", request.User.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Failed to send decision email:", err)
	}
}
