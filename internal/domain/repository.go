package domain

//go:generate mockery --name=LinkRepository --output=../mocks --outpkg=mocks --with-expecter

import (
	"context"
	"time"
)

// LinkRepository defines the persistence operations for links.
// Implementations must keep Insert unique on code, IncrementClickCount
// atomic and SoftDelete idempotent under concurrent callers.
type LinkRepository interface {
	// Insert stores a new link and sets its ID.
	// Returns ErrCodeTaken if any row, deleted or not, already uses the code.
	Insert(ctx context.Context, link *Link) error

	// FindByCode returns the link regardless of its deleted or expired state.
	// Returns ErrLinkNotFound if no row has the code.
	FindByCode(ctx context.Context, code string) (*Link, error)

	// IncrementClickCount atomically adds one to the click count.
	IncrementClickCount(ctx context.Context, code string) error

	// SoftDelete marks an active link deleted at the given time and returns
	// the number of rows changed, 0 when the link is missing or already deleted.
	SoftDelete(ctx context.Context, code string, at time.Time) (int64, error)

	// ListActive returns links that are not deleted, newest first.
	ListActive(ctx context.Context) ([]*Link, error)

	// ListAll returns every link including deleted ones, newest first.
	ListAll(ctx context.Context) ([]*Link, error)
}
