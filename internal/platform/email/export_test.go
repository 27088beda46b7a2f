package email

import "net/smtp"

// SetSendFunc replaces the SMTP transport used by m.
func (e *SMTPMailer) SetSendFunc(fn func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) {
	e.sendMail = fn
}
