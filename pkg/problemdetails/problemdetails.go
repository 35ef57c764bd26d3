package problemdetails

import (
	"fmt"
	"net/http"
	"strings"
)

// ContentType is the media type of a problem detail body.
const ContentType = "application/problem+json"

const (
	TypeInvalidURL    = "invalid-url"
	TypeInvalidTTL    = "invalid-ttl"
	TypeLinkNotFound  = "link-not-found"
	TypeLinkExpired   = "link-expired"
	TypeCodeExhausted = "code-exhausted"
	TypeStorageError  = "storage-error"
	TypeInternalError = "internal-error"
)

// BaseURL prefixes every problem type.
var BaseURL = "https://short.link/problems/"

type ProblemDetail struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail"`
	Instance string            `json:"instance,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	if problemType == "" {
		problemType = TypeInternalError
	}
	if title == "" {
		title = http.StatusText(status)
	}
	return &ProblemDetail{
		Type:   fmt.Sprintf("%s%s", BaseURL, problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// TypeFromReason turns an error reason such as LINK_NOT_FOUND into a
// problem type slug such as link-not-found.
func TypeFromReason(reason string) string {
	if reason == "" {
		return TypeInternalError
	}
	return strings.ToLower(strings.ReplaceAll(reason, "_", "-"))
}

// WithInstance sets the URI reference of the failing request.
func (p *ProblemDetail) WithInstance(instance string) *ProblemDetail {
	p.Instance = instance
	return p
}

// WithMetadata attaches extra members, e.g. the code a delete targeted.
func (p *ProblemDetail) WithMetadata(md map[string]string) *ProblemDetail {
	if len(md) > 0 {
		p.Metadata = md
	}
	return p
}
