package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayout-app/backend/internal/client"
	"github.com/wayout-app/backend/internal/domain"
)

func TestCloudinary_Upload_ReturnsSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/demo-cloud/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "wayout_unsigned", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "avatar.jpg", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(data))

		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo-cloud/avatar.jpg"}`))
	}))
	defer srv.Close()

	c := client.NewCloudinary("demo-cloud", "wayout_unsigned", srv.URL)

	url, err := c.Upload(context.Background(), "avatar.jpg", strings.NewReader("jpeg-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo-cloud/avatar.jpg", url)
}

func TestCloudinary_Upload_MissingSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer srv.Close()

	c := client.NewCloudinary("demo-cloud", "missing", srv.URL)

	_, err := c.Upload(context.Background(), "avatar.jpg", strings.NewReader("x"))

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "Upload preset not found")
}
