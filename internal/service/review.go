package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/repo"
)

const (
	defaultReviewLimit = 20
	maxReviewLimit     = 100
)

// ReviewService validates and stores user reviews.
type ReviewService struct {
	reviews repo.ReviewRepo
}

// NewReviewService constructs a ReviewService.
func NewReviewService(reviews repo.ReviewRepo) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Create validates and persists a review.
func (s *ReviewService) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	if review.UserID == uuid.Nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Create: %w", domain.ErrUnauthorized)
	}
	review.Name = strings.TrimSpace(review.Name)
	review.Title = strings.TrimSpace(review.Title)
	review.Message = strings.TrimSpace(review.Message)

	switch {
	case review.Name == "":
		return domain.Review{}, fmt.Errorf("service.ReviewService.Create: %w: name is required", domain.ErrValidation)
	case review.Title == "":
		return domain.Review{}, fmt.Errorf("service.ReviewService.Create: %w: title is required", domain.ErrValidation)
	case review.Message == "":
		return domain.Review{}, fmt.Errorf("service.ReviewService.Create: %w: message is required", domain.ErrValidation)
	case review.Rating < 1 || review.Rating > 5:
		return domain.Review{}, fmt.Errorf("service.ReviewService.Create: %w: rating must be between 1 and 5", domain.ErrValidation)
	}

	return s.reviews.Create(ctx, review)
}

// ListRecent returns the newest reviews. A non-positive limit falls back to
// the default; oversized limits are capped.
func (s *ReviewService) ListRecent(ctx context.Context, limit int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	if limit > maxReviewLimit {
		limit = maxReviewLimit
	}

	reviews, err := s.reviews.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}
