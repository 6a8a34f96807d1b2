package admin

import (
	"errors"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MiB

var (
	errUploadTooLarge = errors.New("image file is too large (max 10 MB)")
	errUploadNotImage = errors.New("uploaded file must be an image")

	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// sanitizeFilename strips path components and anything outside a safe
// character set, with spaces collapsed to underscores.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, "._-")
	if name == "" {
		name = "upload"
	}
	return name
}

// uniqueFilename appends a short uuid suffix so repeated uploads of the same
// filename never clobber each other.
func uniqueFilename(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return stem + "_" + uuid.NewString()[:8] + ext
}

// saveUpload validates the file, writes it under the upload directory and
// returns the public /static path to store on the record. The file is written
// before the caller commits the record, so a failure here never leaves a row
// pointing at a missing file.
func (a *AdminModule) saveUpload(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	if file.Size > maxUploadBytes {
		return "", errUploadTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", errUploadNotImage
	}

	name := uniqueFilename(sanitizeFilename(file.Filename))

	destDir := filepath.Join(a.uploadDir, subdir)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(destDir, name)); err != nil {
		return "", err
	}

	return path.Join("/static/images", subdir, name), nil
}

func isUploadValidationError(err error) bool {
	return errors.Is(err, errUploadTooLarge) || errors.Is(err, errUploadNotImage)
}
