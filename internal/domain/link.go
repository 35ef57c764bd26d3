package domain

import "time"

// Link is a stored short link.
type Link struct {
	ID          int64
	Code        string
	OriginalURL string
	ClickCount  int64
	CreatedAt   time.Time
	// ExpiresAt is nil only for rows written without a lifetime.
	ExpiresAt *time.Time
	// DeletedAt is set once by a soft delete and never cleared.
	DeletedAt *time.Time
}

// NewLink creates an unsaved link that expires ttl after createdAt.
func NewLink(code Code, originalURL OriginalURL, ttl TTL, createdAt time.Time) *Link {
	expiresAt := ttl.ExpiresAt(createdAt)
	return &Link{
		Code:        code.String(),
		OriginalURL: originalURL.String(),
		CreatedAt:   createdAt,
		ExpiresAt:   &expiresAt,
	}
}

// IsDeleted reports whether the link has been soft deleted.
func (l *Link) IsDeleted() bool {
	return l.DeletedAt != nil
}

// IsExpired reports whether the link stopped resolving at or before now.
func (l *Link) IsExpired(now time.Time) bool {
	if l.ExpiresAt == nil {
		return false
	}
	return !now.Before(*l.ExpiresAt)
}

// CanRedirect checks deletion and expiry independently, deletion first.
func (l *Link) CanRedirect(now time.Time) error {
	if l.IsDeleted() {
		return ErrLinkNotFound
	}
	if l.IsExpired(now) {
		return ErrLinkExpired
	}
	return nil
}
