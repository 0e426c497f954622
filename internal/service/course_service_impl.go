package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lenaweber/paceflow/internal/domain"
	"github.com/lenaweber/paceflow/internal/repository"
)

type courseService struct {
	courses repository.CourseRepo
}

func NewCourseService(courses repository.CourseRepo) CourseService {
	return &courseService{courses: courses}
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) error {
	if err := c.ValidateCode(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = domain.CourseActive
	}
	return s.courses.Create(ctx, c)
}

func (s *courseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

func (s *courseService) List(ctx context.Context, includeArchived bool) ([]*domain.Course, error) {
	return s.courses.List(ctx, includeArchived)
}

func (s *courseService) Update(ctx context.Context, c *domain.Course) error {
	c.UpdatedAt = time.Now().UTC()
	return s.courses.Update(ctx, c)
}

func (s *courseService) Archive(ctx context.Context, id string) error {
	return s.courses.Archive(ctx, id)
}

func (s *courseService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		c, err := s.courses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c.Status != domain.CourseArchived {
			return fmt.Errorf("course must be archived before deletion (use --force to override)")
		}
	}
	return s.courses.Delete(ctx, id)
}
