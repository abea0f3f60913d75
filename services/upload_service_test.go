package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appcanvas-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

func TestUploadStore(t *testing.T) {
	t.Run("persists the bytes and returns a /uploads URL", func(t *testing.T) {
		dir := t.TempDir()
		svc := NewUploadService(dir)

		url, err := svc.Store(makeFileHeader(t, "drawing.png", []byte("png-bytes")))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(url, ".png"))

		name := strings.TrimPrefix(url, "/uploads/")
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("generates a fresh name per upload", func(t *testing.T) {
		svc := NewUploadService(t.TempDir())

		first, err := svc.Store(makeFileHeader(t, "a.png", []byte("one")))
		require.NoError(t, err)
		second, err := svc.Store(makeFileHeader(t, "a.png", []byte("two")))
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		svc := NewUploadService(t.TempDir())

		_, err := svc.Store(nil)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}
