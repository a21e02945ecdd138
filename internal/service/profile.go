package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/repo"
)

// Uploader stores an image and returns its public URL.
// Satisfied by *client.Cloudinary.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// ProfileService reads and updates user profiles, including avatar uploads.
type ProfileService struct {
	profiles repo.ProfileRepo
	uploader Uploader // nil when image uploads are not configured
}

// NewProfileService constructs a ProfileService. Pass a nil uploader to run
// without avatar uploads; the rest of the profile API keeps working.
func NewProfileService(profiles repo.ProfileRepo, uploader Uploader) *ProfileService {
	return &ProfileService{profiles: profiles, uploader: uploader}
}

// Get returns the profile owned by the given user.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	if userID == uuid.Nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Get: %w", domain.ErrUnauthorized)
	}
	return s.profiles.GetByID(ctx, userID)
}

// Update overwrites the profile's name and phone. The avatar URL is managed
// by UploadAvatar only and is preserved here.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, name, phone string) (domain.Profile, error) {
	if userID == uuid.Nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", domain.ErrUnauthorized)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w: name is required", domain.ErrValidation)
	}

	current, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	current.Name = name
	current.Phone = strings.TrimSpace(phone)

	return s.profiles.Update(ctx, current)
}

// UploadAvatar stores the image and records its URL on the profile.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, file io.Reader) (domain.Profile, error) {
	if userID == uuid.Nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.UploadAvatar: %w", domain.ErrUnauthorized)
	}
	if s.uploader == nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.UploadAvatar: %w: image uploads not configured", domain.ErrUpstream)
	}

	url, err := s.uploader.Upload(ctx, filename, file)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.UploadAvatar: %w", err)
	}

	current, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	current.AvatarURL = url

	return s.profiles.Update(ctx, current)
}
