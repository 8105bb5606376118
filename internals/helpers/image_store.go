package helper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Local public file store. Uploaded images live under UPLOAD_DIR (served at
// /uploads) in a per-entity subdirectory; records keep the relative path.

const maxImageSize = int64(2 * 1024 * 1024) // 2MB, matching the form constraint

const (
	webpQuality = 85
	maxImageDim = 1600
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var ErrImageTooLarge = errors.New("image exceeds 2MB")
var ErrImageBadFormat = errors.New("image must be jpg, jpeg, png, gif or webp")

func UploadDir() string {
	if v := strings.TrimSpace(os.Getenv("UPLOAD_DIR")); v != "" {
		return v
	}
	return "./public/uploads"
}

// ValidateImageUpload checks size and extension before anything touches disk.
func ValidateImageUpload(fh *multipart.FileHeader) error {
	if fh.Size > maxImageSize {
		return ErrImageTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExt[ext] {
		return ErrImageBadFormat
	}
	return nil
}

// SaveUploadedImage stores the upload under <UPLOAD_DIR>/<folder>/ and returns
// the public relative path ("/uploads/<folder>/<file>"). JPEG and PNG are
// re-encoded to bounded WebP; GIF and WebP are stored as-is.
func SaveUploadedImage(folder string, fh *multipart.FileHeader) (string, error) {
	if err := ValidateImageUpload(fh); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	var data []byte
	var name string

	switch ext {
	case ".jpg", ".jpeg", ".png":
		img, err := imaging.Decode(bytes.NewReader(buf.Bytes()), imaging.AutoOrientation(true))
		if err != nil {
			return "", ErrImageBadFormat
		}
		if img.Bounds().Dx() > maxImageDim {
			img = imaging.Resize(img, maxImageDim, 0, imaging.Lanczos)
		}
		out := new(bytes.Buffer)
		if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
			return "", fmt.Errorf("encode webp: %w", err)
		}
		data = out.Bytes()
		name = generateUniqueFilename(strings.TrimSuffix(fh.Filename, ext) + ".webp")
	default:
		// keep gif animation / already-compressed webp untouched
		data = buf.Bytes()
		name = generateUniqueFilename(fh.Filename)
	}

	dir := filepath.Join(UploadDir(), folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return "/uploads/" + folder + "/" + name, nil
}

// DeleteStoredImage removes the file a record's public path points at.
// A missing file is not an error; a path outside /uploads is rejected.
func DeleteStoredImage(publicPath string) error {
	publicPath = strings.TrimSpace(publicPath)
	if publicPath == "" {
		return nil
	}
	rel, ok := strings.CutPrefix(publicPath, "/uploads/")
	if !ok {
		return fmt.Errorf("not a managed upload path: %s", publicPath)
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid upload path: %s", publicPath)
	}
	if err := os.Remove(filepath.Join(UploadDir(), rel)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

func generateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
