package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_English(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "en", c.Lang())
	assert.Equal(t, "Invalid email format", c.T("validation.email_invalid", nil))
	assert.Equal(t, "Password must be at least 6 characters",
		c.T("validation.password_too_short", map[string]any{"Min": 6}))
	assert.Equal(t, "Public key must be at least 100 characters (currently 42)",
		c.T("validation.key_too_short", map[string]any{"Min": 100, "Length": 42}))
}

func TestCatalog_German(t *testing.T) {
	c := MustNew("de")

	assert.Equal(t, "Die Passwörter stimmen nicht überein", c.T("validation.password_mismatch", nil))
	assert.Equal(t, "Willkommen, Anna", c.T("screen.dashboard.welcome", map[string]any{"FirstName": "Anna"}))
}

func TestCatalog_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	c := MustNew("fr")

	assert.Equal(t, "Invalid email or password", c.T("auth.invalid_credentials", nil))
}

func TestCatalog_UnknownIDReturnedAsIs(t *testing.T) {
	c := MustNew("en")

	assert.Equal(t, "no.such.message", c.T("no.such.message", nil))
}
