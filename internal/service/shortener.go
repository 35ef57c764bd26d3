package service

import (
	"context"
	"strings"
	"time"

	"shortlink/internal/biz"
	"shortlink/internal/domain"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/samber/lo"
)

type ShortenRequest struct {
	URL string `json:"url"`
	TTL string `json:"ttl"`
}

type ShortenReply struct {
	ShortURL  string    `json:"shortUrl"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LinkInfo is one row of the public listing.
type LinkInfo struct {
	Code        string     `json:"code"`
	OriginalURL string     `json:"original_url"`
	ClickCount  int64      `json:"click_count"`
	ExpiresAt   *time.Time `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
	ShortURL    string     `json:"shortUrl"`
}

// DebugLinkInfo is a raw stored row, deleted ones included.
type DebugLinkInfo struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	OriginalURL string     `json:"original_url"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ClickCount  int64      `json:"click_count"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

type DeleteReply struct {
	OK   bool   `json:"ok"`
	Code string `json:"code"`
}

type HealthReply struct {
	OK bool `json:"ok"`
}

type ShortenerService struct {
	uc     *biz.LinkUsecase
	health *biz.HealthUsecase
	log    *log.Helper
}

func NewShortenerService(uc *biz.LinkUsecase, health *biz.HealthUsecase, logger log.Logger) *ShortenerService {
	return &ShortenerService{
		uc:     uc,
		health: health,
		log:    log.NewHelper(logger),
	}
}

func (s *ShortenerService) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenReply, error) {
	link, err := s.uc.Create(ctx, strings.TrimSpace(req.URL), req.TTL)
	if err != nil {
		return nil, s.toServiceError(ctx, err)
	}

	return &ShortenReply{
		ShortURL:  s.uc.ShortURL(link.Code),
		Code:      link.Code,
		ExpiresAt: *link.ExpiresAt,
	}, nil
}

// Resolve returns the redirect target for code.
func (s *ShortenerService) Resolve(ctx context.Context, code string) (string, error) {
	originalURL, err := s.uc.Resolve(ctx, code)
	if err != nil {
		return "", s.toServiceError(ctx, err)
	}
	return originalURL, nil
}

func (s *ShortenerService) DeleteLink(ctx context.Context, code string) (*DeleteReply, error) {
	code = strings.TrimSpace(code)
	deleted, err := s.uc.Delete(ctx, code)
	if err != nil {
		return nil, s.toServiceError(ctx, err)
	}
	if !deleted {
		return nil, kerrors.NotFound(ReasonLinkNotFound, "Not found").
			WithMetadata(map[string]string{"code": code})
	}

	return &DeleteReply{OK: true, Code: code}, nil
}

func (s *ShortenerService) ListLinks(ctx context.Context) ([]*LinkInfo, error) {
	links, err := s.uc.List(ctx)
	if err != nil {
		return nil, s.toServiceError(ctx, err)
	}

	return lo.Map(links, func(l *domain.Link, _ int) *LinkInfo {
		return &LinkInfo{
			Code:        l.Code,
			OriginalURL: l.OriginalURL,
			ClickCount:  l.ClickCount,
			ExpiresAt:   l.ExpiresAt,
			CreatedAt:   l.CreatedAt,
			ShortURL:    s.uc.ShortURL(l.Code),
		}
	}), nil
}

func (s *ShortenerService) ListAllLinks(ctx context.Context) ([]*DebugLinkInfo, error) {
	links, err := s.uc.ListAll(ctx)
	if err != nil {
		return nil, s.toServiceError(ctx, err)
	}

	return lo.Map(links, func(l *domain.Link, _ int) *DebugLinkInfo {
		return &DebugLinkInfo{
			ID:          l.ID,
			Code:        l.Code,
			OriginalURL: l.OriginalURL,
			CreatedAt:   l.CreatedAt,
			ExpiresAt:   l.ExpiresAt,
			ClickCount:  l.ClickCount,
			DeletedAt:   l.DeletedAt,
		}
	}), nil
}

func (s *ShortenerService) Health(ctx context.Context) (*HealthReply, error) {
	if err := s.health.Check(ctx); err != nil {
		return nil, kerrors.ServiceUnavailable(ReasonUnavailable, "database unavailable")
	}
	return &HealthReply{OK: true}, nil
}
