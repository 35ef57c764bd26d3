package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shortlink/internal/conf"
	"shortlink/internal/domain"
	"shortlink/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
)

const defaultBaseURL = "https://short.link"

// insertOutcome is the result of one generate-and-insert attempt.
type insertOutcome int

const (
	outcomeInserted insertOutcome = iota
	outcomeCollision
	outcomeFailed
)

// LinkUsecase runs the link lifecycle: create, resolve, delete and list.
type LinkUsecase struct {
	repo    domain.LinkRepository
	events  event.Publisher
	baseURL string
	log     *log.Helper

	now      func() time.Time
	generate func(length int) (domain.Code, error)
}

// NewLinkUsecase creates a new LinkUsecase.
func NewLinkUsecase(repo domain.LinkRepository, events event.Publisher, c *conf.Shortener, logger log.Logger) *LinkUsecase {
	baseURL := defaultBaseURL
	if c != nil && c.BaseUrl != "" {
		baseURL = c.BaseUrl
	}
	return &LinkUsecase{
		repo:     repo,
		events:   events,
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      log.NewHelper(logger),
		now:      func() time.Time { return time.Now().UTC() },
		generate: domain.GenerateCode,
	}
}

// Create validates the request and stores a link under a fresh code,
// retrying with a new code when the store reports a collision.
func (uc *LinkUsecase) Create(ctx context.Context, rawURL, ttlLabel string) (*domain.Link, error) {
	originalURL, err := domain.NewOriginalURL(rawURL)
	if err != nil {
		return nil, err
	}

	ttl, err := domain.ParseTTL(ttlLabel)
	if err != nil {
		return nil, err
	}

	createdAt := uc.now()

	for attempt := 1; attempt <= domain.MaxCodeAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		code, err := uc.generate(domain.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("generate short code: %w", err)
		}

		link := domain.NewLink(code, originalURL, ttl, createdAt)
		outcome, err := uc.tryInsert(ctx, link)
		switch outcome {
		case outcomeInserted:
			uc.log.WithContext(ctx).Infof("link created: %s -> %s (ttl %s)", link.Code, link.OriginalURL, ttl.Label())
			uc.publish(ctx, event.NewLinkCreated(link.Code, link.OriginalURL, *link.ExpiresAt))
			return link, nil
		case outcomeCollision:
			uc.log.WithContext(ctx).Debugf("short code collision on attempt %d: %s", attempt, link.Code)
			continue
		default:
			return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
		}
	}

	uc.log.WithContext(ctx).Errorf("no unique short code after %d attempts", domain.MaxCodeAttempts)
	return nil, domain.ErrCodeExhausted
}

func (uc *LinkUsecase) tryInsert(ctx context.Context, link *domain.Link) (insertOutcome, error) {
	err := uc.repo.Insert(ctx, link)
	switch {
	case err == nil:
		return outcomeInserted, nil
	case errors.Is(err, domain.ErrCodeTaken):
		return outcomeCollision, err
	default:
		return outcomeFailed, err
	}
}

// Resolve returns the original URL for code and counts the click.
// Deleted links read as ErrLinkNotFound, expired ones as ErrLinkExpired.
func (uc *LinkUsecase) Resolve(ctx context.Context, code string) (string, error) {
	if _, err := domain.ParseCode(code); err != nil {
		return "", domain.ErrLinkNotFound
	}

	link, err := uc.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			return "", domain.ErrLinkNotFound
		}
		return "", fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	if err := link.CanRedirect(uc.now()); err != nil {
		if errors.Is(err, domain.ErrLinkExpired) {
			uc.publish(ctx, event.NewLinkExpired(link.Code, *link.ExpiresAt))
		}
		return "", err
	}

	counted := true
	if err := uc.repo.IncrementClickCount(ctx, code); err != nil {
		counted = false
		uc.log.WithContext(ctx).Errorf("failed to increment click count for %s: %v", code, err)
	}
	uc.publish(ctx, event.NewLinkClicked(code, counted))

	return link.OriginalURL, nil
}

// Delete soft deletes the link and reports whether this call deactivated it.
func (uc *LinkUsecase) Delete(ctx context.Context, code string) (bool, error) {
	if _, err := domain.ParseCode(code); err != nil {
		return false, nil
	}

	deletedAt := uc.now()
	changed, err := uc.repo.SoftDelete(ctx, code, deletedAt)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	if changed == 0 {
		return false, nil
	}

	uc.log.WithContext(ctx).Infof("link deleted: %s", code)
	uc.publish(ctx, event.NewLinkDeleted(code, deletedAt))
	return true, nil
}

// List returns active links, newest first.
func (uc *LinkUsecase) List(ctx context.Context) ([]*domain.Link, error) {
	links, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return links, nil
}

// ListAll returns every link including deleted ones, newest first.
func (uc *LinkUsecase) ListAll(ctx context.Context) ([]*domain.Link, error) {
	links, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return links, nil
}

// ShortURL returns the public short link for code.
func (uc *LinkUsecase) ShortURL(code string) string {
	return uc.baseURL + "/" + code
}

func (uc *LinkUsecase) publish(ctx context.Context, e event.Event) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(ctx, e); err != nil {
		uc.log.WithContext(ctx).Warnf("failed to publish %s for %s: %v", e.EventName(), e.AggregateID(), err)
	}
}
