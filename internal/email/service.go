package email

import (
	"context"
	"embed"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/contractorpro/contractorpro/internal/config"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/metrics"
)

//go:embed templates/*.html
var templates embed.FS

// Email renders the transactional templates and hands them to a Sender
type Email struct {
	sender      Sender
	companyName string
	logger      *logger.Logger
	now         func() time.Time
}

func NewEmail(sender Sender, cfg *config.Configuration, logger *logger.Logger) *Email {
	return &Email{
		sender:      sender,
		companyName: cfg.Email.CompanyName,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *Email) IsEnabled() bool {
	return s.sender.IsEnabled()
}

func (s *Email) company(name string) string {
	if name != "" {
		return name
	}
	return s.companyName
}

func (s *Email) SendInvoice(ctx context.Context, data InvoiceEmailData) (*SendEmailResponse, error) {
	company := s.company(data.CompanyName)
	amount := data.Amount.StringFixed(2)

	return s.send(ctx, TemplateInvoice, data.ClientEmail,
		fmt.Sprintf("Invoice #%s from %s", data.InvoiceNumber, company),
		map[string]string{
			"client_name":    data.ClientName,
			"invoice_number": data.InvoiceNumber,
			"invoice_date":   data.InvoiceDate,
			"due_date":       data.DueDate,
			"amount":         amount,
			"currency":       data.Currency,
			"invoice_url":    data.InvoiceURL,
			"company_name":   company,
		},
		fmt.Sprintf("Invoice #%s for %s %s is due on %s. View: %s",
			data.InvoiceNumber, data.Currency, amount, data.DueDate, data.InvoiceURL),
	)
}

func (s *Email) SendPaymentConfirmation(ctx context.Context, data PaymentConfirmationEmailData) (*SendEmailResponse, error) {
	amount := data.Amount.StringFixed(2)

	return s.send(ctx, TemplatePaymentConfirmation, data.ClientEmail,
		fmt.Sprintf("Payment Confirmation for Invoice #%s", data.InvoiceNumber),
		map[string]string{
			"client_name":    data.ClientName,
			"invoice_number": data.InvoiceNumber,
			"amount":         amount,
			"currency":       data.Currency,
			"payment_date":   data.PaymentDate,
			"payment_method": data.PaymentMethod,
			"company_name":   s.company(data.CompanyName),
		},
		fmt.Sprintf("Payment of %s %s received for invoice #%s on %s.",
			data.Currency, amount, data.InvoiceNumber, data.PaymentDate),
	)
}

func (s *Email) SendPaymentReminder(ctx context.Context, data PaymentReminderEmailData) (*SendEmailResponse, error) {
	amount := data.Amount.StringFixed(2)
	days := strconv.Itoa(data.DaysOverdue)

	return s.send(ctx, TemplatePaymentReminder, data.ClientEmail,
		fmt.Sprintf("Payment Reminder: Invoice #%s is Overdue", data.InvoiceNumber),
		map[string]string{
			"client_name":    data.ClientName,
			"invoice_number": data.InvoiceNumber,
			"amount":         amount,
			"currency":       data.Currency,
			"due_date":       data.DueDate,
			"days_overdue":   days,
			"invoice_url":    data.InvoiceURL,
			"company_name":   s.company(data.CompanyName),
		},
		fmt.Sprintf("Invoice #%s for %s %s is %s days overdue. Please pay at: %s",
			data.InvoiceNumber, data.Currency, amount, days, data.InvoiceURL),
	)
}

func (s *Email) SendWelcome(ctx context.Context, data WelcomeEmailData) (*SendEmailResponse, error) {
	company := s.company(data.CompanyName)

	return s.send(ctx, TemplateWelcome, data.ClientEmail,
		fmt.Sprintf("Welcome to %s!", company),
		map[string]string{
			"client_name":  data.ClientName,
			"company_name": company,
		},
		fmt.Sprintf("Welcome %s! Thank you for choosing %s.", data.ClientName, company),
	)
}

func (s *Email) SendTest(ctx context.Context, to string) (*SendEmailResponse, error) {
	return s.send(ctx, TemplateTest, to,
		fmt.Sprintf("Test Email from %s", s.companyName),
		map[string]string{"company_name": s.companyName},
		fmt.Sprintf("This is a test email from %s.", s.companyName),
	)
}

// send renders name and delivers it. A disabled sender yields Success false with no error.
func (s *Email) send(ctx context.Context, name, to, subject string, data map[string]string, text string) (*SendEmailResponse, error) {
	if !s.sender.IsEnabled() {
		s.logger.Warnw("email client is disabled, skipping email send",
			"to", to,
			"template", name,
		)
		return &SendEmailResponse{
			Success: false,
			Error:   "email client is disabled",
		}, nil
	}

	htmlContent, err := s.render(name, data)
	if err != nil {
		s.logger.Errorw("failed to render email template", "error", err, "template", name)
		return &SendEmailResponse{Success: false, Error: err.Error()}, err
	}

	messageID, err := s.sender.SendEmail(ctx, s.sender.GetFromAddress(), to, subject, htmlContent, text)
	metrics.RecordEmail(name, err == nil)
	if err != nil {
		s.logger.Errorw("failed to send email",
			"error", err,
			"to", to,
			"subject", subject,
			"template", name,
		)
		return &SendEmailResponse{Success: false, Error: err.Error()}, err
	}

	s.logger.Infow("email sent successfully",
		"message_id", messageID,
		"to", to,
		"subject", subject,
		"template", name,
	)
	return &SendEmailResponse{MessageID: messageID, Success: true}, nil
}

// render loads the embedded template, appends the shared footer and fills {{key}} placeholders
// with HTML-escaped values.
func (s *Email) render(name string, data map[string]string) (string, error) {
	body, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}
	content := string(body)

	if name != TemplateTest {
		footer, err := templates.ReadFile("templates/layout_footer.html")
		if err != nil {
			return "", fmt.Errorf("failed to read template footer: %w", err)
		}
		content += string(footer)
	}

	values := map[string]string{"year": strconv.Itoa(s.now().Year())}
	for k, v := range data {
		values[k] = v
	}
	return replacePlaceholders(content, values), nil
}

func replacePlaceholders(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{%s}}", key)
		result = strings.ReplaceAll(result, placeholder, html.EscapeString(value))
	}
	return result
}
