package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"

	"github.com/clubhub-dev/clubhub/internal/adapters/logger"
)

// Client is the email delivery channel. Sends are fire-and-forget: a
// failure is logged and reported as false, never retried.
type Client struct {
	dialer *gomail.Dialer
}

func NewClient(dialer *gomail.Dialer) *Client {
	return &Client{dialer: dialer}
}

// SendEmail delivers a plain-text message and reports success.
func (c *Client) SendEmail(to, subject, body string) bool {
	msg := gomail.NewMessage()

	domain := viper.GetString("service.smtp.domain")

	msg.SetHeader("Message-ID", generateMessageID(domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", viper.GetString("service.smtp.email"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := c.dialer.DialAndSend(msg); err != nil {
		logger.Log.Errorf("failed to send email to %s: %v", to, err)
		return false
	}

	return true
}

func generateMessageID(domain string) string {
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}
