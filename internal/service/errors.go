package service

import (
	"context"
	"errors"
	"strings"

	"shortlink/internal/domain"

	kerrors "github.com/go-kratos/kratos/v2/errors"
)

// Error reasons carried by kratos errors and rendered as problem types.
const (
	ReasonInvalidURL    = "INVALID_URL"
	ReasonInvalidTTL    = "INVALID_TTL"
	ReasonLinkNotFound  = "LINK_NOT_FOUND"
	ReasonLinkExpired   = "LINK_EXPIRED"
	ReasonCodeExhausted = "CODE_EXHAUSTED"
	ReasonStorageError  = "STORAGE_ERROR"
	ReasonUnavailable   = "UNAVAILABLE"
)

// toServiceError maps lifecycle errors to transport errors. Causes of
// internal failures are logged here and kept out of the response.
func (s *ShortenerService) toServiceError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return kerrors.BadRequest(ReasonInvalidURL, "Invalid URL. Must start with http(s)://")
	case errors.Is(err, domain.ErrInvalidTTL):
		return kerrors.BadRequest(ReasonInvalidTTL, "Missing or unsupported expiration (ttl). Use one of "+strings.Join(domain.TTLLabels(), ", "))
	case errors.Is(err, domain.ErrLinkNotFound):
		return kerrors.NotFound(ReasonLinkNotFound, "Short link not found")
	case errors.Is(err, domain.ErrLinkExpired):
		return kerrors.NotFound(ReasonLinkExpired, "Short link expired")
	case errors.Is(err, domain.ErrCodeExhausted):
		s.log.WithContext(ctx).Errorf("create link: %v", err)
		return kerrors.InternalServer(ReasonCodeExhausted, "Could not generate unique code")
	default:
		s.log.WithContext(ctx).Errorf("request failed: %v", err)
		return kerrors.InternalServer(ReasonStorageError, "Database error")
	}
}
