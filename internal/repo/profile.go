package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wayout-app/backend/internal/domain"
)

// ProfileRepo defines the persistence operations for user profiles.
// A profile's ID is the owning user's ID; there is at most one per user.
type ProfileRepo interface {
	// Create inserts a profile for a freshly signed-up user.
	Create(ctx context.Context, profile domain.Profile) (domain.Profile, error)

	// GetByID retrieves the profile owned by the given user.
	// Returns domain.ErrNotFound if the user has no profile row.
	GetByID(ctx context.Context, userID uuid.UUID) (domain.Profile, error)

	// Update overwrites the mutable fields (name, phone, avatar_url) and
	// returns the updated record. Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, profile domain.Profile) (domain.Profile, error)
}

type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by the provided db connection.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

func (r *pgProfileRepo) Create(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	const q = `
		INSERT INTO profiles (id, name, phone, avatar_url)
		VALUES (@id, @name, @phone, @avatar_url)
		RETURNING id, name, phone, avatar_url, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":         profile.ID,
		"name":       profile.Name,
		"phone":      profile.Phone,
		"avatar_url": profile.AvatarURL,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanProfile(row)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgProfileRepo) GetByID(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	const q = `
		SELECT id, name, phone, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": userID})
	result, err := scanProfile(row)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgProfileRepo) Update(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	const q = `
		UPDATE profiles
		SET name       = @name,
		    phone      = @phone,
		    avatar_url = @avatar_url,
		    updated_at = now()
		WHERE id = @id
		RETURNING id, name, phone, avatar_url, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":         profile.ID,
		"name":       profile.Name,
		"phone":      profile.Phone,
		"avatar_url": profile.AvatarURL,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanProfile(row)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Update: %w", err)
	}
	return result, nil
}

func scanProfile(s scanner) (domain.Profile, error) {
	var (
		p  domain.Profile
		id pgtype.UUID
	)

	err := s.Scan(&id, &p.Name, &p.Phone, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, err
	}

	p.ID = uuidFromPg(id)
	return p, nil
}

// uuidFromPg converts a pgtype.UUID into the uuid package's value type.
func uuidFromPg(id pgtype.UUID) uuid.UUID {
	return uuid.UUID(id.Bytes)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
