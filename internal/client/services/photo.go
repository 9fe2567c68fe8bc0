package services

import (
	"context"
	"fmt"
	"strings"
)

// PhotoUploader turns a local picture into a public URL.
// *photos.Uploader implements it.
type PhotoUploader interface {
	Enabled() bool
	Upload(ctx context.Context, path string) (string, error)
}

// resolvePhoto returns the value for the "foto" field. URLs and empty values
// are used as typed; anything else is taken as a local file and uploaded
// when an uploader is configured.
func resolvePhoto(ctx context.Context, u PhotoUploader, photo string) (string, error) {
	photo = strings.TrimSpace(photo)
	if photo == "" || strings.HasPrefix(photo, "http://") || strings.HasPrefix(photo, "https://") {
		return photo, nil
	}
	if u == nil || !u.Enabled() {
		return photo, nil
	}
	url, err := u.Upload(ctx, photo)
	if err != nil {
		return "", fmt.Errorf("photo upload error: %w", err)
	}
	return url, nil
}
