package service

import (
	"context"
	"math/rand/v2"
)

// PhotoSearcher returns image URLs for a search query.
// Satisfied by *client.Unsplash.
type PhotoSearcher interface {
	Search(ctx context.Context, query string, page, perPage int) ([]string, error)
}

// photoFallbackURL is served when the search fails or returns nothing, so
// destination cards always have an image.
const photoFallbackURL = "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800"

const photoPerPage = 5

// PhotoService resolves a destination photo. Each lookup picks a random page
// and a random result within it, so repeated views of the same destination
// cycle through different images.
type PhotoService struct {
	photos  PhotoSearcher
	randInt func(n int) int // swapped for a deterministic source in tests
}

// NewPhotoService constructs a PhotoService.
func NewPhotoService(photos PhotoSearcher) *PhotoService {
	return &PhotoService{photos: photos, randInt: rand.IntN}
}

// DestinationPhoto returns one image URL for the query. Failures never
// propagate: any error or empty result falls back to a stock travel photo.
func (s *PhotoService) DestinationPhoto(ctx context.Context, query string) string {
	page := 1 + s.randInt(3) // pages 1..3
	urls, err := s.photos.Search(ctx, query, page, photoPerPage)
	if err != nil || len(urls) == 0 {
		return photoFallbackURL
	}
	return urls[s.randInt(len(urls))]
}
