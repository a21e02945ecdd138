package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wayout-app/backend/internal/domain"
)

// TripRepo defines the persistence operations for saved trip plans.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip plan and returns the persisted record
	// (with DB-generated id and created_at populated).
	Create(ctx context.Context, trip domain.TripPlan) (domain.TripPlan, error)

	// FindMatch looks up an existing row with exactly the given
	// (user, destination, plan) triple. Returns domain.ErrNotFound when no
	// such row exists. This backs the idempotent-save check.
	FindMatch(ctx context.Context, userID uuid.UUID, destination, plan string) (domain.TripPlan, error)

	// ListByUser returns the user's saved trips, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.TripPlan, int64, error)

	// GetByID retrieves one saved trip scoped to its owner.
	// Returns domain.ErrNotFound if no such trip exists for that user.
	GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.TripPlan, error)

	// Delete removes a saved trip scoped to its owner.
	// Returns domain.ErrNotFound if no such trip exists for that user.
	Delete(ctx context.Context, userID, tripID uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

func (r *pgTripRepo) Create(ctx context.Context, trip domain.TripPlan) (domain.TripPlan, error) {
	const q = `
		INSERT INTO trips (user_id, destination, duration_days, travelers, budget, plan)
		VALUES (@user_id, @destination, @duration_days, @travelers, @budget, @plan)
		RETURNING id, user_id, destination, duration_days, travelers, budget, plan, created_at`

	args := pgx.NamedArgs{
		"user_id":       trip.UserID,
		"destination":   trip.Destination,
		"duration_days": trip.DurationDays,
		"travelers":     trip.Travelers,
		"budget":        trip.Budget,
		"plan":          trip.Plan,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) FindMatch(ctx context.Context, userID uuid.UUID, destination, plan string) (domain.TripPlan, error) {
	const q = `
		SELECT id, user_id, destination, duration_days, travelers, budget, plan, created_at
		FROM trips
		WHERE user_id = @user_id AND destination = @destination AND plan = @plan
		LIMIT 1`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"user_id":     userID,
		"destination": destination,
		"plan":        plan,
	})
	result, err := scanTrip(row)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("repo.TripRepo.FindMatch: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.TripPlan, int64, error) {
	const countQ = `SELECT count(*) FROM trips WHERE user_id = @user_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: count: %w", err)
	}

	const q = `
		SELECT id, user_id, destination, duration_days, travelers, budget, plan, created_at
		FROM trips
		WHERE user_id = @user_id
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var trips []domain.TripPlan
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: scan: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListByUser: rows: %w", err)
	}

	return trips, total, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.TripPlan, error) {
	const q = `
		SELECT id, user_id, destination, duration_days, travelers, budget, plan, created_at
		FROM trips
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID})
	result, err := scanTrip(row)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": tripID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single database row into a domain.TripPlan.
func scanTrip(s scanner) (domain.TripPlan, error) {
	var (
		t      domain.TripPlan
		id     pgtype.UUID
		userID pgtype.UUID
	)

	err := s.Scan(&id, &userID, &t.Destination, &t.DurationDays, &t.Travelers, &t.Budget, &t.Plan, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripPlan{}, domain.ErrNotFound
		}
		return domain.TripPlan{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.UserID = uuid.UUID(userID.Bytes)
	return t, nil
}
