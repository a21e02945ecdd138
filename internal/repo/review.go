package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wayout-app/backend/internal/domain"
)

// ReviewRepo defines the persistence operations for user reviews.
type ReviewRepo interface {
	// Create inserts a new review and returns the persisted record.
	Create(ctx context.Context, review domain.Review) (domain.Review, error)

	// ListRecent returns the newest reviews, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]domain.Review, error)
}

type pgReviewRepo struct {
	db db
}

// NewReviewRepo constructs a ReviewRepo backed by the provided db connection.
func NewReviewRepo(db db) ReviewRepo {
	return &pgReviewRepo{db: db}
}

func (r *pgReviewRepo) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	const q = `
		INSERT INTO reviews (user_id, name, title, message, rating, travel_type, would_recommend, visit_date)
		VALUES (@user_id, @name, @title, @message, @rating, @travel_type, @would_recommend, @visit_date)
		RETURNING id, user_id, name, title, message, rating, travel_type, would_recommend, visit_date, created_at`

	args := pgx.NamedArgs{
		"user_id":         review.UserID,
		"name":            review.Name,
		"title":           review.Title,
		"message":         review.Message,
		"rating":          review.Rating,
		"travel_type":     review.TravelType,
		"would_recommend": review.WouldRecommend,
		"visit_date":      review.VisitDate,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanReview(row)
	if err != nil {
		return domain.Review{}, fmt.Errorf("repo.ReviewRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgReviewRepo) ListRecent(ctx context.Context, limit int) ([]domain.Review, error) {
	const q = `
		SELECT id, user_id, name, title, message, rating, travel_type, would_recommend, visit_date, created_at
		FROM reviews
		ORDER BY created_at DESC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.ReviewRepo.ListRecent: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReviewRepo.ListRecent: scan: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReviewRepo.ListRecent: rows: %w", err)
	}

	return reviews, nil
}

func scanReview(s scanner) (domain.Review, error) {
	var (
		rev       domain.Review
		id        pgtype.UUID
		userID    pgtype.UUID
		visitDate pgtype.Date
	)

	err := s.Scan(&id, &userID, &rev.Name, &rev.Title, &rev.Message, &rev.Rating,
		&rev.TravelType, &rev.WouldRecommend, &visitDate, &rev.CreatedAt)
	if err != nil {
		return domain.Review{}, err
	}

	rev.ID = uuidFromPg(id)
	rev.UserID = uuidFromPg(userID)
	rev.VisitDate = visitDate.Time
	return rev, nil
}
