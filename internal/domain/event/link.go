package event

import "time"

const (
	LinkCreatedName = "link.created"
	LinkClickedName = "link.clicked"
	LinkDeletedName = "link.deleted"
	LinkExpiredName = "link.expired"
)

// Names lists every lifecycle event name.
var Names = []string{
	LinkCreatedName,
	LinkClickedName,
	LinkDeletedName,
	LinkExpiredName,
}

// Compile-time interface checks
var (
	_ Event = LinkCreated{}
	_ Event = LinkClicked{}
	_ Event = LinkDeleted{}
	_ Event = LinkExpired{}
)

// LinkCreated is raised when a new short link is stored.
type LinkCreated struct {
	Base
	Code        string    `json:"code"`
	OriginalURL string    `json:"original_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NewLinkCreated creates a new LinkCreated event.
func NewLinkCreated(code, originalURL string, expiresAt time.Time) LinkCreated {
	return LinkCreated{
		Base:        NewBase(code),
		Code:        code,
		OriginalURL: originalURL,
		ExpiresAt:   expiresAt,
	}
}

// EventName returns the event name.
func (e LinkCreated) EventName() string {
	return LinkCreatedName
}

// LinkClicked is raised when a short link is resolved for redirection.
type LinkClicked struct {
	Base
	Code string `json:"code"`
	// Counted is false when the click counter could not be incremented.
	Counted bool `json:"counted"`
}

// NewLinkClicked creates a new LinkClicked event.
func NewLinkClicked(code string, counted bool) LinkClicked {
	return LinkClicked{
		Base:    NewBase(code),
		Code:    code,
		Counted: counted,
	}
}

// EventName returns the event name.
func (e LinkClicked) EventName() string {
	return LinkClickedName
}

// LinkDeleted is raised when a link is soft deleted.
type LinkDeleted struct {
	Base
	Code      string    `json:"code"`
	DeletedAt time.Time `json:"deleted_at"`
}

// NewLinkDeleted creates a new LinkDeleted event.
func NewLinkDeleted(code string, deletedAt time.Time) LinkDeleted {
	return LinkDeleted{
		Base:      NewBase(code),
		Code:      code,
		DeletedAt: deletedAt,
	}
}

// EventName returns the event name.
func (e LinkDeleted) EventName() string {
	return LinkDeletedName
}

// LinkExpired is raised when a resolution is refused because the link expired.
type LinkExpired struct {
	Base
	Code      string    `json:"code"`
	ExpiredAt time.Time `json:"expired_at"`
}

// NewLinkExpired creates a new LinkExpired event.
func NewLinkExpired(code string, expiredAt time.Time) LinkExpired {
	return LinkExpired{
		Base:      NewBase(code),
		Code:      code,
		ExpiredAt: expiredAt,
	}
}

// EventName returns the event name.
func (e LinkExpired) EventName() string {
	return LinkExpiredName
}
