package email

import (
	"context"
	"fmt"
	"time"

	"api.sahayatri.app/src/pkg/global"

	"github.com/resend/resend-go/v2"
)

func SendEmail(recipient string, subject string, html string, text string) error {
	client := resend.NewClient(global.RESEND_API_KEY)

	params := &resend.SendEmailRequest{
		From:    global.RESEND_FROM,
		To:      []string{recipient},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	_, err := client.Emails.SendWithContext(context.TODO(), params)
	return err
}

// SendLockoutAlert tells the account owner that repeated failed logins locked
// the account and when it unlocks.
func SendLockoutAlert(recipient string, lockUntil time.Time) error {
	until := lockUntil.Format(time.RFC1123)
	subject := "Your Sahayatri account has been locked"
	html := fmt.Sprintf(
		"<p>Your account was locked after too many failed login attempts.</p><p>It will be unlocked at %s. If this wasn't you, please change your password after the lock expires.</p>",
		until,
	)
	text := fmt.Sprintf(
		"Your account was locked after too many failed login attempts. It will be unlocked at %s. If this wasn't you, please change your password after the lock expires.",
		until,
	)

	return SendEmail(recipient, subject, html, text)
}
