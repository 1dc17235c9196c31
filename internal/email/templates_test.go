package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateManager_RegistersBuiltins(t *testing.T) {
	t.Parallel()

	tm, err := NewTemplateManager()
	require.NoError(t, err)

	names := tm.TemplateNames()
	assert.ElementsMatch(t, []string{
		TemplateEmailVerification,
		TemplatePasswordReset,
		TemplateWelcome,
		TemplateProfileVerified,
		TemplateAccountStatus,
		TemplateAdminNewUser,
	}, names)
}

func TestTemplateManager_RenderVerification(t *testing.T) {
	t.Parallel()

	tm, err := NewTemplateManager()
	require.NoError(t, err)

	html, err := tm.Render(TemplateEmailVerification, TemplateData{
		"Name":             "Aizhan",
		"VerificationLink": "https://example.com/verify-email?token=abc123",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Aizhan")
	assert.Contains(t, html, "https://example.com/verify-email?token=abc123")
	assert.Contains(t, html, "<!DOCTYPE html>")
}

func TestTemplateManager_RenderAccountStatus(t *testing.T) {
	t.Parallel()

	tm, err := NewTemplateManager()
	require.NoError(t, err)

	withReason, err := tm.Render(TemplateAccountStatus, TemplateData{
		"Name":   "Aizhan",
		"Status": "suspended",
		"Reason": "Repeated guideline violations",
	})
	require.NoError(t, err)
	assert.Contains(t, withReason, "suspended")
	assert.Contains(t, withReason, "Repeated guideline violations")

	withoutReason, err := tm.Render(TemplateAccountStatus, TemplateData{
		"Name":   "Aizhan",
		"Status": "verified",
	})
	require.NoError(t, err)
	assert.Contains(t, withoutReason, "verified")
	assert.NotContains(t, withoutReason, "Reason")
}

func TestTemplateManager_RenderEscapesHTML(t *testing.T) {
	t.Parallel()

	tm, err := NewTemplateManager()
	require.NoError(t, err)

	html, err := tm.Render(TemplateWelcome, TemplateData{
		"Name":        "<script>alert(1)</script>",
		"ProfileLink": "https://example.com/complete-profile",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	t.Parallel()

	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("no_such_template", TemplateData{})
	assert.Error(t, err)
}

func TestTemplateManager_AddTemplate(t *testing.T) {
	t.Parallel()

	tm, err := NewTemplateManager()
	require.NoError(t, err)

	require.NoError(t, tm.AddTemplate("custom", "Hello {{.Name}}"))
	html, err := tm.Render("custom", TemplateData{"Name": "Aizhan"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Aizhan", html)

	assert.Error(t, tm.AddTemplate("broken", "Hello {{.Name"))
}
