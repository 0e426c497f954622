package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/repository"
)

type blackoutService struct {
	blackouts repository.BlackoutRepo
}

func NewBlackoutService(blackouts repository.BlackoutRepo) BlackoutService {
	return &blackoutService{blackouts: blackouts}
}

func (s *blackoutService) Add(ctx context.Context, b *domain.BlackoutDate) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.blackouts.Create(ctx, b)
}

func (s *blackoutService) ListByCourse(ctx context.Context, courseID string) ([]domain.BlackoutDate, error) {
	return s.blackouts.ListByCourse(ctx, courseID)
}

func (s *blackoutService) Remove(ctx context.Context, id string) error {
	return s.blackouts.Delete(ctx, id)
}
