package services

import (
	"context"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
)

// ImageFetcher retrieves a remote image after admission checks.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// AvatarService updates a user's avatar from a remote URL. The image is
// fetched through the hardened pipeline to prove it is retrievable and
// benign; only the URL is persisted. Resubmitting the same URL simply
// overwrites the stored value.
type AvatarService struct {
	fetcher ImageFetcher
	users   UserWriter
}

// NewAvatarService creates a new AvatarService.
func NewAvatarService(fetcher ImageFetcher, users UserWriter) *AvatarService {
	return &AvatarService{
		fetcher: fetcher,
		users:   users,
	}
}

// Update fetches the image and stores the URL, returning the downloaded
// size in bytes. Fetch errors are returned unwrapped so callers can
// distinguish admission rejections from transport failures.
func (svc *AvatarService) Update(ctx context.Context, userID int64, rawURL string) (int, error) {
	data, err := svc.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return 0, err
	}

	if err := svc.users.UpdateAvatar(ctx, userID, rawURL); err != nil {
		logger.Log.Errorw("failed to persist avatar URL", "user_id", userID, "error", err)
		return 0, err
	}

	return len(data), nil
}
