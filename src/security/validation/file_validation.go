package validation

import (
	"fmt"
	"mime"
	"strings"

	"github.com/username/dopconv/src/logger"
)

// MaxDocumentBytes caps how much of a rate source page is read.
const MaxDocumentBytes = 4 << 20

// AllowedDocumentContentTypes lists the media types a rate source may answer with.
var AllowedDocumentContentTypes = map[string]bool{
	"text/html":                true,
	"application/xhtml+xml":    true,
	"text/plain":               true,
	"application/json":         true,
	"application/octet-stream": false,
	"image/png":                false,
}

// ValidateDocumentContentType checks the Content-Type a rate source replied with.
// An empty header is accepted; some sources omit it.
func ValidateDocumentContentType(contentType string) error {
	if strings.TrimSpace(contentType) == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		logger.L.Warn("Unparseable document Content-Type", "contentType", contentType, "error", err)
		return fmt.Errorf("rate source returned an unreadable content type '%s'", contentType)
	}
	if allowed, exists := AllowedDocumentContentTypes[strings.ToLower(mediaType)]; !exists || !allowed {
		logger.L.Warn("Disallowed document Content-Type", "contentType", contentType)
		return fmt.Errorf("rate source returned content type '%s', expected a web page", mediaType)
	}
	return nil
}
