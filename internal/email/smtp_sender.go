package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"lifemap/internal/domain"
)

// SMTPSender envia correos via SMTP.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
	useTLS   bool
}

func NewSMTPSender(host string, port int, username, password, from, fromName string, useTLS bool) (*SMTPSender, error) {
	if strings.TrimSpace(host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if strings.TrimSpace(from) == "" {
		return nil, fmt.Errorf("smtp from is required")
	}
	if port == 0 {
		port = 587
	}
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
		useTLS:   useTLS,
	}, nil
}

func (s *SMTPSender) SendMentorshipRequest(_ context.Context, toEmail string, req domain.MentorshipRequest) error {
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("to email is required")
	}

	subject := fmt.Sprintf("New mentorship request: %s", req.MentorshipType)
	body := mentorshipBody(req)
	msg := buildMessage(s.from, s.fromName, toEmail, subject, body)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if s.useTLS {
		conn, err := tls.Dial("tcp", addr, &tls.Config{
			ServerName: s.host,
		})
		if err != nil {
			return err
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.host)
		if err != nil {
			return err
		}
		defer client.Quit()

		if auth != nil {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
		if err := client.Mail(s.from); err != nil {
			return err
		}
		if err := client.Rcpt(toEmail); err != nil {
			return err
		}
		writer, err := client.Data()
		if err != nil {
			return err
		}
		if _, err := writer.Write([]byte(msg)); err != nil {
			_ = writer.Close()
			return err
		}
		return writer.Close()
	}

	return smtp.SendMail(addr, auth, s.from, []string{toEmail}, []byte(msg))
}

func mentorshipBody(req domain.MentorshipRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", req.UserName)
	fmt.Fprintf(&b, "Email: %s\n", req.UserEmail)
	fmt.Fprintf(&b, "Age: %s\n", req.UserAge)
	fmt.Fprintf(&b, "Type: %s\n", req.MentorshipType)
	if req.SpecificArea != "" {
		fmt.Fprintf(&b, "Area: %s\n", req.SpecificArea)
	}
	fmt.Fprintf(&b, "Commitment: %s\n", req.TimeCommitment)
	fmt.Fprintf(&b, "Preferred gender: %s\n", req.PreferredGender)
	fmt.Fprintf(&b, "Submitted: %s UTC\n\n", req.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Goals:\n%s\n\nExperience:\n%s\n", req.Goals, req.Experience)
	if req.AdditionalInfo != "" {
		fmt.Fprintf(&b, "\nAdditional info:\n%s\n", req.AdditionalInfo)
	}
	return b.String()
}

func buildMessage(from, fromName, to, subject, body string) string {
	fromHeader := from
	if strings.TrimSpace(fromName) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", fromName, from)
	}

	headers := []string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	}

	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body
}
