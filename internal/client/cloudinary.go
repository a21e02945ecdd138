package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/wayout-app/backend/internal/domain"
)

const defaultCloudinaryBaseURL = "https://api.cloudinary.com"

// Cloudinary uploads images through an unsigned upload preset and returns
// the resulting public URL.
type Cloudinary struct {
	cloudName    string
	uploadPreset string
	baseURL      string
	httpc        *http.Client
}

// NewCloudinary constructs an image uploader. An empty baseURL uses the
// public API; tests point it at an httptest server.
func NewCloudinary(cloudName, uploadPreset, baseURL string) *Cloudinary {
	if baseURL == "" {
		baseURL = defaultCloudinaryBaseURL
	}
	return &Cloudinary{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		baseURL:      baseURL,
		httpc:        &http.Client{Timeout: 60 * time.Second},
	}
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends image bytes as a multipart form and returns the secure URL.
// A success response without a secure_url maps to domain.ErrUpstream.
func (c *Cloudinary) Upload(ctx context.Context, filename string, image io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("client.Cloudinary.Upload: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("client.Cloudinary.Upload: %w", err)
	}
	if err := mw.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", fmt.Errorf("client.Cloudinary.Upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("client.Cloudinary.Upload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("client.Cloudinary.Upload: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("client.Cloudinary.Upload: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	var out cloudinaryUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("client.Cloudinary.Upload: %w: %v", domain.ErrUpstream, err)
	}

	if out.SecureURL == "" {
		msg := out.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("client.Cloudinary.Upload: %w: %s", domain.ErrUpstream, msg)
	}
	return out.SecureURL, nil
}
