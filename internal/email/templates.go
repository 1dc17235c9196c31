package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Template names used across the application.
const (
	TemplateEmailVerification = "email_verification"
	TemplatePasswordReset     = "password_reset"
	TemplateWelcome           = "welcome"
	TemplateProfileVerified   = "profile_verified"
	TemplateAccountStatus     = "account_status"
	TemplateAdminNewUser      = "admin_new_user"
)

// TemplateManager implements TemplateRenderer over an in-memory template map.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager pre-loaded with the built-in templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	if err := tm.registerBuiltins(); err != nil {
		return nil, err
	}
	return tm, nil
}

// Render renders a named template with the given data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate parses and stores a template under the given name.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// TemplateNames returns the names of all registered templates.
func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}

	return names
}

func (tm *TemplateManager) registerBuiltins() error {
	builtins := map[string]string{
		TemplateEmailVerification: emailVerificationTemplate,
		TemplatePasswordReset:     passwordResetTemplate,
		TemplateWelcome:           welcomeTemplate,
		TemplateProfileVerified:   profileVerifiedTemplate,
		TemplateAccountStatus:     accountStatusTemplate,
		TemplateAdminNewUser:      adminNewUserTemplate,
	}
	for name, body := range builtins {
		wrapped := strings.Replace(baseTemplate, "{{CONTENT}}", body, 1)
		if err := tm.AddTemplate(name, wrapped); err != nil {
			return fmt.Errorf("failed to register builtin %s: %w", name, err)
		}
	}
	return nil
}

// baseTemplate is the shared branded frame every email body is wrapped in.
const baseTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ACSP - Association of Cybersecurity Practitioners</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            color: #333;
            background-color: #f9f9f9;
            padding: 20px;
        }
        .email-container {
            max-width: 600px;
            margin: 0 auto;
            background-color: #FFFFFF;
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1);
        }
        .email-header {
            background-color: #0A1A4A;
            color: #FFFFFF;
            padding: 30px 20px;
            text-align: center;
        }
        .logo { font-size: 28px; font-weight: bold; margin-bottom: 10px; letter-spacing: 1px; }
        .logo-subtitle { font-size: 14px; opacity: 0.9; font-weight: 300; }
        .email-content { padding: 40px 30px; }
        .greeting { color: #0A1A4A; margin-bottom: 20px; font-size: 24px; }
        .message { margin-bottom: 25px; font-size: 16px; color: #555; }
        .cta-button {
            display: inline-block;
            background-color: #0A1A4A;
            color: #FFFFFF;
            padding: 14px 32px;
            text-decoration: none;
            border-radius: 6px;
            font-weight: 600;
            font-size: 16px;
            margin: 20px 0;
        }
        .important-note {
            background-color: #fff8e1;
            border-left: 4px solid #ffc107;
            padding: 15px;
            margin: 20px 0;
            font-size: 14px;
        }
        .info-box {
            background-color: #e8f4fd;
            border-left: 4px solid #2C3E8F;
            padding: 15px;
            margin: 20px 0;
            font-size: 14px;
        }
        .details-box {
            background-color: #F5F7FA;
            padding: 20px;
            border-radius: 6px;
            margin: 20px 0;
        }
        .email-footer {
            background-color: #F5F7FA;
            color: #666;
            padding: 20px 30px;
            text-align: center;
            font-size: 13px;
        }
        .link { color: #2C3E8F; word-break: break-all; }
    </style>
</head>
<body>
    <div class="email-container">
        <div class="email-header">
            <div class="logo">ACSP</div>
            <div class="logo-subtitle">Association of Cybersecurity Practitioners</div>
        </div>
        <div class="email-content">
{{CONTENT}}
        </div>
        <div class="email-footer">
            <p>&copy; ACSP. All rights reserved.</p>
            <p>This is an automated message, please do not reply directly to this email.</p>
        </div>
    </div>
</body>
</html>`

const emailVerificationTemplate = `
            <h2 class="greeting">Welcome to ACSP, {{.Name}}!</h2>
            <div class="message">
                <p>Thank you for registering with the Association of Cybersecurity Practitioners (ACSP).</p>
                <p>To complete your registration and activate your account, please verify your email address by clicking the button below:</p>
            </div>
            <div style="text-align: center;">
                <a href="{{.VerificationLink}}" class="cta-button">Verify Email Address</a>
            </div>
            <div class="message">
                <p>This link will expire in <strong>24 hours</strong>.</p>
                <p>If the button doesn't work, you can copy and paste the following link into your browser:</p>
                <a href="{{.VerificationLink}}" class="link">{{.VerificationLink}}</a>
            </div>
            <div class="info-box">
                <strong>Need help?</strong> If you didn't create an account with ACSP, please ignore this email or contact our support team.
            </div>`

const passwordResetTemplate = `
            <h2 class="greeting">Password Reset Request</h2>
            <div class="message">
                <p>Hello {{.Name}},</p>
                <p>We received a request to reset your ACSP account password. Click the button below to set a new password:</p>
            </div>
            <div style="text-align: center;">
                <a href="{{.ResetLink}}" class="cta-button">Reset Password</a>
            </div>
            <div class="message">
                <p>This password reset link will expire in <strong>1 hour</strong>.</p>
                <p>If you didn't request a password reset, please ignore this email or secure your account.</p>
            </div>
            <div class="important-note">
                <strong>Security Tip:</strong> Never share your password or this link with anyone.
                ACSP will never ask for your password via email.
            </div>`

const welcomeTemplate = `
            <h2 class="greeting">Welcome to the ACSP Community, {{.Name}}!</h2>
            <div class="message">
                <p>Congratulations! Your email has been verified successfully.</p>
                <p>You are now a member of the Association of Cybersecurity Practitioners. Here's what you can do next:</p>
            </div>
            <div style="margin: 30px 0;">
                <h3 style="color: #0A1A4A; margin-bottom: 10px;">Complete Your Profile</h3>
                <p>Share your expertise and connect with other cybersecurity professionals.</p>
                <div style="text-align: center;">
                    <a href="{{.ProfileLink}}" class="cta-button">Complete Profile</a>
                </div>
            </div>
            <div class="info-box">
                <strong>Need Assistance?</strong> Our community team is here to help with any questions.
            </div>`

const profileVerifiedTemplate = `
            <h2 class="greeting">Profile Verification Complete!</h2>
            <div class="message">
                <p>Hello {{.Name}},</p>
                <p>Great news! Your ACSP profile has been successfully verified by our team.</p>
                <p>You now have full access to all member benefits and features.</p>
            </div>
            <div style="text-align: center; margin: 30px 0;">
                <div style="background-color: #28a745; color: white; padding: 15px; border-radius: 6px; display: inline-block;">
                    <strong style="font-size: 18px;">VERIFIED MEMBER</strong>
                </div>
            </div>
            <div class="message">
                <p><strong>What's next?</strong></p>
                <ul style="margin: 15px 0 15px 20px;">
                    <li>Connect with other verified cybersecurity professionals</li>
                    <li>Participate in exclusive member-only discussions</li>
                    <li>Access premium resources and training materials</li>
                    <li>Join upcoming events and webinars</li>
                </ul>
            </div>
            <div style="text-align: center; margin: 30px 0;">
                <a href="{{.ForumLink}}" class="cta-button">Join Community Discussions</a>
            </div>`

const accountStatusTemplate = `
            <h2 class="greeting">Account Status Update</h2>
            <div class="message">
                <p>Hello {{.Name}},</p>
                <p>The status of your ACSP account has changed to <strong>{{.Status}}</strong>.</p>
                {{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
            </div>
            <div class="info-box">
                If you believe this change was made in error, please contact our support team.
            </div>`

const adminNewUserTemplate = `
            <h2 class="greeting">New User Registration</h2>
            <div class="message">
                <p>A new user has registered on the ACSP platform:</p>
            </div>
            <div class="details-box">
                <table style="width: 100%;">
                    <tr>
                        <td style="padding: 8px 0; width: 120px;"><strong>Name:</strong></td>
                        <td style="padding: 8px 0;">{{.UserName}}</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0;"><strong>Email:</strong></td>
                        <td style="padding: 8px 0;">{{.UserEmail}}</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0;"><strong>Role:</strong></td>
                        <td style="padding: 8px 0;">{{.UserRole}}</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0;"><strong>Status:</strong></td>
                        <td style="padding: 8px 0;">{{.UserStatus}}</td>
                    </tr>
                    <tr>
                        <td style="padding: 8px 0;"><strong>Registered:</strong></td>
                        <td style="padding: 8px 0;">{{.Timestamp}}</td>
                    </tr>
                </table>
            </div>
            <div class="message">
                <p>Review the registration in the admin dashboard.</p>
            </div>`
