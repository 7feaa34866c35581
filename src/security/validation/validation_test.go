package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeQuery(t *testing.T) {
	assert.Equal(t, "1,000 63.25", SanitizeQuery("  1,000\t63.25\n"))
	assert.Equal(t, "1000", SanitizeQuery("10\u200b00"))
	assert.Equal(t, "", SanitizeQuery("\x00\x01"))
}

func TestValidateDocumentContentType(t *testing.T) {
	for _, ct := range []string{"", "text/html", "text/html; charset=utf-8", "TEXT/HTML", "application/json"} {
		assert.NoError(t, ValidateDocumentContentType(ct), ct)
	}
	for _, ct := range []string{"image/png", "application/octet-stream", "application/pdf", ";;;"} {
		assert.Error(t, ValidateDocumentContentType(ct), ct)
	}
}
