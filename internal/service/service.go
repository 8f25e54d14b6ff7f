package service

import (
	"log/slog"

	"github.com/YusovID/racing-league/internal/metrics"
	"github.com/YusovID/racing-league/internal/repository"
	"github.com/YusovID/racing-league/pkg/logger/sl"
)

type BaseService struct {
	store   repository.Store
	log     *slog.Logger
	metrics *metrics.Recorder
}

func NewBaseService(store repository.Store, log *slog.Logger, rec *metrics.Recorder) BaseService {
	return BaseService{
		store:   store,
		log:     log,
		metrics: rec,
	}
}

// transaction runs fn under the store lock. fn must finish every check before
// its first mutation, so a returned error always leaves the store untouched.
func (s *BaseService) transaction(op string, fn func() error) error {
	err := s.store.WithLock(fn)

	s.metrics.Observe(op, err)

	if err != nil {
		s.log.Warn("operation rejected", slog.String("op", op), sl.Err(err))
		return err
	}

	return nil
}

// read runs fn under the store lock without recording metrics.
func (s *BaseService) read(fn func()) {
	_ = s.store.WithLock(func() error {
		fn()
		return nil
	})
}
