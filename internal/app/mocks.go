package app

import (
	"acsp_backend/internal/email"
	"acsp_backend/internal/logger"
)

// NoopEmailProvider logs outbound messages instead of delivering them. It
// backs local development and test setups without an SMTP relay.
type NoopEmailProvider struct{}

func NewNoopEmailProvider() *NoopEmailProvider {
	return &NoopEmailProvider{}
}

func (p *NoopEmailProvider) Send(msg *email.Email) error {
	logger.Info("email suppressed (no SMTP configured)", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (p *NoopEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	logger.Info("email suppressed (no SMTP configured)",
		"template", templateName,
		"to", msg.To,
		"subject", msg.Subject)
	return nil
}

func (p *NoopEmailProvider) Validate() error { return nil }
func (p *NoopEmailProvider) Close() error    { return nil }
