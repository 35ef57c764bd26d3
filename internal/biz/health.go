package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthUsecase checks the dependencies a request needs.
type HealthUsecase struct {
	db  Pinger
	log *log.Helper
}

// NewHealthUsecase creates a new HealthUsecase.
func NewHealthUsecase(db Pinger, logger log.Logger) *HealthUsecase {
	return &HealthUsecase{db: db, log: log.NewHelper(logger)}
}

// Check returns the first dependency failure, if any.
func (uc *HealthUsecase) Check(ctx context.Context) error {
	if err := uc.db.Ping(ctx); err != nil {
		uc.log.WithContext(ctx).Warnf("database ping failed: %v", err)
		return err
	}
	return nil
}
