package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"github.com/ferdiebergado/bookstore/internal/config"
)

var _ Mailer = &SMTPMailer{}

// layoutName is the template every page is rendered through. The layout file
// must define it and include a "content" block supplied by the page.
const layoutName = "layout"

type templateMap map[string]*template.Template

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	from      string
	pass      string
	host      string
	port      int
	sender    string
	templates templateMap
	sendMail  sendFunc
}

func (e *SMTPMailer) send(to []string, subject, body, contentType string) error {
	if len(to) == 0 {
		return errors.New("send email: no recipients")
	}

	var auth smtp.Auth
	if e.from != "" {
		auth = smtp.PlainAuth("", e.from, e.pass, e.host)
	}

	sender := e.sender
	if sender == "" {
		sender = e.from
	}

	recipients := strings.Join(to, ", ")
	headers := "From: " + sender + "\r\n" +
		"To: " + recipients + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0\r\n" +
		"Content-Type: " + contentType + "; charset=\"UTF-8\"\r\n\r\n"

	message := headers + body
	addr := fmt.Sprintf("%s:%d", e.host, e.port)

	if err := e.sendMail(addr, auth, e.from, to, []byte(message)); err != nil {
		return fmt.Errorf("sending email from %q to %q: %w", e.from, to, err)
	}

	slog.Info("Email sent.", "subject", subject, "recipients", len(to))
	return nil
}

func (e *SMTPMailer) SendHTML(to []string, subject, tmplName string, data any) error {
	tmpl, ok := e.templates[tmplName]
	if !ok {
		return fmt.Errorf("template does not exist: %s", tmplName)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("execute email template for subject %q: %w", subject, err)
	}

	if err := e.send(to, subject, buf.String(), "text/html"); err != nil {
		return fmt.Errorf("sending email to %q with subject %q: %w", to, subject, err)
	}

	return nil
}

func (e *SMTPMailer) SendPlain(to []string, subject, body string) error {
	return e.send(to, subject, body, "text/plain")
}

func NewSMTPMailer(cfg *config.SMTPOptions, opts *config.EmailOptions) (*SMTPMailer, error) {
	path := opts.Templates
	layoutFile := filepath.Join(path, opts.Layout)
	tmplMap, err := parsePages(path, opts.Layout, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse pages at path %q and layout file %q: %w", path, layoutFile, err)
	}

	return &SMTPMailer{
		from:      cfg.User,
		pass:      cfg.Password,
		host:      cfg.Host,
		port:      cfg.Port,
		sender:    opts.Sender,
		templates: tmplMap,
		sendMail:  smtp.SendMail,
	}, nil
}

func parsePages(templateDir, layoutBase, layoutFile string) (templateMap, error) {
	layoutTmpl, err := template.ParseFiles(layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout %q: %w", layoutFile, err)
	}

	tmplMap := make(templateMap)
	err = fs.WalkDir(os.DirFS(templateDir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk directory %q at path %q: %w", templateDir, path, err)
		}

		const suffix = ".html"
		if d.IsDir() || !strings.HasSuffix(path, suffix) || path == layoutBase {
			return nil
		}

		page, err := layoutTmpl.Clone()
		if err != nil {
			return fmt.Errorf("clone layout for %q: %w", path, err)
		}

		if _, err := page.ParseFiles(filepath.Join(templateDir, path)); err != nil {
			return fmt.Errorf("parse page %q: %w", path, err)
		}

		name := strings.TrimSuffix(path, suffix)
		tmplMap[name] = page
		slog.Debug("parsed page", "path", path, "name", name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load pages templates: %w", err)
	}

	return tmplMap, nil
}
