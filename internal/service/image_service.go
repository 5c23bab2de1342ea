package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"github.com/niiakoadjei/BlogApp/internal/constants"
	"github.com/niiakoadjei/BlogApp/internal/utils"
)

// ImageService stores profile pictures. Uploaded images are resized to fit
// within a square bound before being written to disk under a random name,
// so original filenames never reach the filesystem.
type ImageService struct {
	imageDir string
}

// NewImageService creates an image service writing into the given directory.
func NewImageService(imageDir string) (*ImageService, error) {
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &ImageService{imageDir: imageDir}, nil
}

// allowedImageExtensions are the upload extensions accepted for pictures.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// SavePicture decodes, resizes, and stores an uploaded picture, returning
// the generated filename.
func (s *ImageService) SavePicture(reader io.Reader, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedImageExtensions[ext] {
		return "", utils.NewValidationError("picture", "Picture must be a JPEG or PNG image")
	}

	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return "", utils.NewValidationError("picture", "Uploaded file is not a valid image")
	}

	// Fit preserves aspect ratio within the square bound
	resized := imaging.Fit(img, constants.ProfileImageBound, constants.ProfileImageBound, imaging.Lanczos)

	filename, err := randomImageName(ext)
	if err != nil {
		return "", fmt.Errorf("failed to generate image name: %w", err)
	}

	path := filepath.Join(s.imageDir, filename)
	if err := imaging.Save(resized, path); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	log.Debug().Str("filename", filename).Msg("Profile picture stored")

	return filename, nil
}

// Remove deletes a stored picture. The default image is never removed and a
// missing file is not an error.
func (s *ImageService) Remove(filename string) error {
	if filename == "" || filename == constants.DefaultProfileImage {
		return nil
	}

	path := filepath.Join(s.imageDir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image: %w", err)
	}

	return nil
}

// randomImageName generates a random hex filename keeping the extension.
func randomImageName(ext string) (string, error) {
	buf := make([]byte, constants.ProfileImageTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf) + ext, nil
}
