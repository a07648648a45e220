package filemgr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	PostPicDir   = "static/postpic"
	ThumbDir     = "static/postpic/thumb"
	maxImageSize = 10 << 20
	thumbWidth   = 320
)

var (
	allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}
	allowedMIMEs      = []string{"image/jpeg", "image/png", "image/gif"}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

// Asset is the stored image handle plus its public URL. The AssetID is what
// handlers keep on the post so the file can be destroyed when replaced.
type Asset struct {
	AssetID string
	URL     string
}

// SaveImage validates and stores an uploaded post image, generating a jpeg
// thumbnail alongside the original.
func SaveImage(file multipart.File, header *multipart.FileHeader) (Asset, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !slices.Contains(allowedExtensions, ext) {
		return Asset{}, fmt.Errorf("%w: %s", ErrInvalidExtension, ext)
	}

	buf, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return Asset{}, fmt.Errorf("read upload: %w", err)
	}
	if len(buf) > maxImageSize {
		return Asset{}, ErrFileTooLarge
	}

	mimeType := http.DetectContentType(buf)
	if !slices.Contains(allowedMIMEs, mimeType) {
		return Asset{}, fmt.Errorf("%w: %s", ErrInvalidMIME, mimeType)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return Asset{}, fmt.Errorf("decode image: %w", err)
	}

	if err := os.MkdirAll(ThumbDir, 0o755); err != nil {
		return Asset{}, fmt.Errorf("mkdir %s: %w", ThumbDir, err)
	}

	assetID := uuid.New().String()
	filename := assetID + ext
	fullPath := filepath.Join(PostPicDir, filename)
	if err := os.WriteFile(fullPath, buf, 0o644); err != nil {
		return Asset{}, fmt.Errorf("write %s: %w", fullPath, err)
	}

	if err := writeThumbnail(img, assetID); err != nil {
		// The original is already stored; a missing thumbnail is not fatal.
		return Asset{AssetID: assetID, URL: "/" + PostPicDir + "/" + filename}, nil
	}

	return Asset{AssetID: assetID, URL: "/" + PostPicDir + "/" + filename}, nil
}

func writeThumbnail(img image.Image, assetID string) error {
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	out, err := os.Create(filepath.Join(ThumbDir, assetID+".jpg"))
	if err != nil {
		return err
	}
	defer out.Close()
	return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
}

// Destroy removes the stored image and its thumbnail for an asset id.
func Destroy(assetID string) error {
	if assetID == "" {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(PostPicDir, assetID+".*"))
	if err != nil {
		return err
	}
	matches = append(matches, filepath.Join(ThumbDir, assetID+".jpg"))
	for _, path := range matches {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
