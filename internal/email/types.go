package email

// Email is an outbound message.
type Email struct {
	From     string
	To       []string
	Cc       []string
	Bcc      []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData carries the values interpolated into an email template.
type TemplateData map[string]interface{}
