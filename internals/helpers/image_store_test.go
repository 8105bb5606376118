package helper

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImageUpload(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		wantErr  error
	}{
		{"jpg ok", "photo.jpg", 1024, nil},
		{"jpeg ok", "photo.JPEG", 1024, nil},
		{"png ok", "photo.png", maxImageSize, nil},
		{"gif ok", "anim.gif", 1024, nil},
		{"webp ok", "photo.webp", 1024, nil},
		{"too large", "photo.jpg", maxImageSize + 1, ErrImageTooLarge},
		{"bad extension", "document.pdf", 1024, ErrImageBadFormat},
		{"no extension", "photo", 1024, ErrImageBadFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fh := &multipart.FileHeader{Filename: tc.filename, Size: tc.size}
			err := ValidateImageUpload(fh)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestDeleteStoredImage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hotels"), 0o755))
	target := filepath.Join(dir, "hotels", "room.webp")
	require.NoError(t, os.WriteFile(target, []byte("img"), 0o644))

	require.NoError(t, DeleteStoredImage("/uploads/hotels/room.webp"))
	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteStoredImageMissingFileIsFine(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	assert.NoError(t, DeleteStoredImage("/uploads/hotels/gone.webp"))
}

func TestDeleteStoredImageEmptyPathIsFine(t *testing.T) {
	assert.NoError(t, DeleteStoredImage(""))
}

func TestDeleteStoredImageRejectsForeignPaths(t *testing.T) {
	assert.Error(t, DeleteStoredImage("/etc/passwd"))
	assert.Error(t, DeleteStoredImage("https://cdn.example.com/a.webp"))
}

func TestDeleteStoredImageRejectsTraversal(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	assert.Error(t, DeleteStoredImage("/uploads/../secrets.txt"))
	assert.Error(t, DeleteStoredImage("/uploads/hotels/../../secrets.txt"))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_photo_1_.jpg", sanitizeFilename("my photo (1).jpg"))
	assert.Equal(t, "plain-name_ok.webp", sanitizeFilename("plain-name_ok.webp"))
}

func TestGenerateUniqueFilenameKeepsExtension(t *testing.T) {
	a := generateUniqueFilename("beach.webp")
	b := generateUniqueFilename("beach.webp")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "beach.webp"))
	assert.NotContains(t, a, " ")
}
