// Package notifier assembles the delivery channels behind the
// service.Notifier contract. Email goes through SMTP; push and SMS are
// wired but stubbed until real providers are configured.
package notifier

import (
	"go.uber.org/zap"
)

type emailSender interface {
	SendEmail(to, subject, body string) bool
}

type Notifier struct {
	email  emailSender
	logger *zap.SugaredLogger
}

func New(email emailSender, logger *zap.SugaredLogger) *Notifier {
	return &Notifier{
		email:  email,
		logger: logger,
	}
}

func (n *Notifier) SendEmail(to, subject, body string) bool {
	return n.email.SendEmail(to, subject, body)
}

func (n *Notifier) SendPush(userID, title, body string) bool {
	n.logger.Infof("push notification for user %s: %s", userID, title)
	return true
}

func (n *Notifier) SendSMS(phone, body string) bool {
	n.logger.Infof("sms notification for %s", phone)
	return true
}
