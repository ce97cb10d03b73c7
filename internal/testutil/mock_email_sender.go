package testutil

import (
	"context"
	"sync"
)

// SentEmail is one message captured by MockEmailSender
type SentEmail struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// MockEmailSender captures outgoing mail; set Err to simulate a provider failure
type MockEmailSender struct {
	mu      sync.Mutex
	Enabled bool
	Err     error
	sent    []SentEmail
}

func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{Enabled: true}
}

func (m *MockEmailSender) IsEnabled() bool {
	return m.Enabled
}

func (m *MockEmailSender) GetFromAddress() string {
	return "noreply@contractorpro.com"
}

func (m *MockEmailSender) SendEmail(ctx context.Context, from, to, subject, htmlContent, textContent string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentEmail{From: from, To: to, Subject: subject, HTML: htmlContent, Text: textContent})
	return "msg_test", nil
}

func (m *MockEmailSender) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}
