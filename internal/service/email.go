package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"bragnetic-backend/internal/domain"
	"bragnetic-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey     string
	fromAddr   string
	fromName   string
	notifyAddr string
}

// NewEmailService builds the SendGrid notification dispatcher. With no API
// key configured every send is silently skipped.
func NewEmailService(apiKey, fromAddr, fromName, notifyAddr string) EmailService {
	if apiKey == "" {
		logger.Warn("SENDGRID_API_KEY not set - notification emails will be skipped")
	}
	return &emailService{
		apiKey:     apiKey,
		fromAddr:   fromAddr,
		fromName:   fromName,
		notifyAddr: notifyAddr,
	}
}

func (s *emailService) NotifyCreatorApplication(ctx context.Context, app *domain.CreatorApplication) error {
	subject := fmt.Sprintf("New Creator Application: %s", app.Name)
	fields := []emailField{
		{"Name", app.Name},
		{"Email", app.Email},
		{"Portfolio", app.Portfolio},
		{"Niches", app.Niches},
		{"Message", app.Message},
	}
	return s.send(subject, "New Creator Application", fields)
}

func (s *emailService) NotifyBrandEnquiry(ctx context.Context, enq *domain.BrandEnquiry) error {
	subject := fmt.Sprintf("New Brand Enquiry: %s", enq.Company)
	fields := []emailField{
		{"Company", enq.Company},
		{"Contact", enq.Contact},
		{"Email", enq.Email},
		{"Job Title", enq.JobTitle},
		{"Industry", enq.Industry},
		{"Message", enq.Message},
	}
	return s.send(subject, "New Brand Enquiry", fields)
}

func (s *emailService) NotifyContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	subject := fmt.Sprintf("New Contact: %s", msg.Type)
	fields := []emailField{
		{"Type", string(msg.Type)},
		{"Name", msg.Name},
		{"Email", msg.Email},
		{"Message", msg.Message},
	}
	return s.send(subject, "New Contact Message", fields)
}

type emailField struct {
	Label string
	Value string
}

// renderBody builds the HTML and plain-text bodies. All user-supplied text
// is escaped; empty optional fields are omitted.
func renderBody(heading string, fields []emailField) (htmlBody, plainBody string) {
	var hb, pb strings.Builder
	fmt.Fprintf(&hb, "<h2>%s</h2>", html.EscapeString(heading))
	fmt.Fprintf(&pb, "%s\n\n", heading)
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		fmt.Fprintf(&hb, "<p><strong>%s:</strong> %s</p>", html.EscapeString(f.Label), html.EscapeString(f.Value))
		fmt.Fprintf(&pb, "%s: %s\n", f.Label, f.Value)
	}
	return hb.String(), pb.String()
}

func (s *emailService) send(subject, heading string, fields []emailField) error {
	if s.apiKey == "" {
		return nil
	}

	htmlBody, plainBody := renderBody(heading, fields)
	from := mail.NewEmail(s.fromName, s.fromAddr)
	to := mail.NewEmail("", s.notifyAddr)
	message := mail.NewSingleEmail(from, subject, to, plainBody, htmlBody)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
