package form

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	// Preview decoding supports the browser image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// MaxAvatarBytes caps accepted avatar uploads at 5 MiB.
const MaxAvatarBytes = 5 << 20

var (
	// ErrAvatarNotImage rejects files without an image MIME type or with
	// undecodable image data.
	ErrAvatarNotImage = errors.New("avatar is not an image")
	// ErrAvatarTooLarge rejects files over MaxAvatarBytes.
	ErrAvatarTooLarge = errors.New("avatar exceeds size limit")
)

// SelectAvatar validates a chosen file and installs it as the session's
// avatar preview. Rejected files surface an error notification and leave the
// previous preview and selection intact.
func (s *Session) SelectAvatar(filename string, mimeType string, data []byte) error {
	if !strings.HasPrefix(mimeType, "image/") {
		s.notifier.Error(s.dictionary.Validation.AvatarNotImage)
		return fmt.Errorf("select avatar %q: %w", filename, ErrAvatarNotImage)
	}
	if len(data) > MaxAvatarBytes {
		s.notifier.Error(s.dictionary.Validation.AvatarTooLarge)
		return fmt.Errorf("select avatar %q: %w", filename, ErrAvatarTooLarge)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		s.notifier.Error(s.dictionary.Validation.AvatarNotImage)
		return fmt.Errorf("decode avatar %q: %w", filename, ErrAvatarNotImage)
	}

	preview := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)

	s.mu.Lock()
	s.previewImage = preview
	s.selectedFile = filename
	s.mu.Unlock()
	return nil
}

// RemoveAvatar drops the selected file and reverts the preview to the
// originally stored avatar, not to empty.
func (s *Session) RemoveAvatar() {
	s.mu.Lock()
	s.selectedFile = ""
	s.previewImage = s.initial.Avatar
	s.mu.Unlock()
}

// PreviewImage returns the preview shown in the avatar slot: the selected
// file's data URL, or the stored avatar when nothing is selected.
func (s *Session) PreviewImage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewImage
}

// SelectedFile returns the chosen upload's filename, or empty.
func (s *Session) SelectedFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedFile
}
