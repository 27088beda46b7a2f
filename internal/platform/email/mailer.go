// Package email delivers notification messages over SMTP.
package email

// Mailer sends messages to a list of recipients. SendHTML renders the page
// template tmplName inside the configured layout.
type Mailer interface {
	SendPlain(to []string, subject, body string) error
	SendHTML(to []string, subject, tmplName string, data any) error
}
