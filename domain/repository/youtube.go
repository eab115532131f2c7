package repository

import (
	"context"

	"media-portal/domain/dto"
)

// IYouTubeSearch defines the upstream video search operation
type IYouTubeSearch interface {
	SearchVideos(ctx context.Context, query *dto.YouTubeSearchQuery) (*dto.YouTubeSearchPage, error)
}
