package domain

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// MaxURLLength bounds the length of a stored original URL.
const MaxURLLength = 2048

// OriginalURL is a value object representing the URL a link redirects to.
type OriginalURL struct {
	value string
}

// NewOriginalURL validates rawURL as an absolute http or https URL. The
// scheme is matched case-insensitively; rawURL is stored as given.
func NewOriginalURL(rawURL string) (OriginalURL, error) {
	if err := validation.Validate(rawURL,
		validation.Required.Error("URL is required"),
		validation.Length(1, MaxURLLength),
	); err != nil {
		return OriginalURL{}, ErrInvalidURL
	}

	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return OriginalURL{}, ErrInvalidURL
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return OriginalURL{}, ErrInvalidURL
	}

	if parsed.Host == "" {
		return OriginalURL{}, ErrInvalidURL
	}

	// is.URL only knows lowercase schemes.
	normalized := parsed.Scheme + rawURL[len(parsed.Scheme):]
	if err := is.URL.Validate(normalized); err != nil {
		return OriginalURL{}, ErrInvalidURL
	}

	return OriginalURL{value: rawURL}, nil
}

// String returns the string representation of the OriginalURL.
func (o OriginalURL) String() string {
	return o.value
}
