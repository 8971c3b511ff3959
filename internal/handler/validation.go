package handler

import (
	"errors"
	"net/url"
	"strings"
)

const maxURLLength = 2048

// normalizeURL prefixes scheme-less input with https:// so bare
// domains like "example.com/page" shorten cleanly.
func normalizeURL(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// validateURL accepts absolute http/https URLs whose host contains at
// least one dot. Everything that reaches the service has passed here.
func validateURL(raw string) error {
	if len(raw) > maxURLLength {
		return errors.New("URL exceeds maximum length of 2048 characters")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.New("Invalid URL format")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("Invalid URL format")
	}

	if parsed.Host == "" || !strings.Contains(parsed.Host, ".") {
		return errors.New("Invalid URL format")
	}

	return nil
}
