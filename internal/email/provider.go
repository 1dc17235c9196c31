package email

// Provider sends email. Callers treat delivery as best-effort: user-facing
// flows never fail because a message could not be sent.
type Provider interface {
	// Send sends a prepared email message.
	Send(email *Email) error

	// SendWithTemplate renders a registered template into the message body
	// and sends it.
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named email templates.
type TemplateRenderer interface {
	// Render renders a template with data.
	Render(templateName string, data TemplateData) (string, error)

	// AddTemplate registers a template by name.
	AddTemplate(name string, template string) error
}
