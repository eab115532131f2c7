package youtube

import (
	"context"
	"errors"
	"fmt"

	"media-portal/domain/dto"
	"media-portal/domain/model"
	"media-portal/domain/repository"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var ErrMissingAPIKey = errors.New("youtube: API key not configured")

// Client represents the YouTube Data API search client
type Client struct {
	service *youtube.Service
}

// Config represents YouTube API configuration
type Config struct {
	APIKey string `json:"api_key"`
}

// NewYouTubeClient creates an API-key (read-only) client.
// Extra options are appended after the key, which lets tests point it at a local endpoint.
func NewYouTubeClient(ctx context.Context, config *Config, opts ...option.ClientOption) (repository.IYouTubeSearch, error) {
	if config == nil || config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	clientOpts := append([]option.ClientOption{option.WithAPIKey(config.APIKey)}, opts...)
	service, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
	}
	return &Client{service: service}, nil
}

// SearchVideos runs search.list and projects every item to a VideoSummary
func (c *Client) SearchVideos(ctx context.Context, query *dto.YouTubeSearchQuery) (*dto.YouTubeSearchPage, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(query.Q).
		Type("video").
		MaxResults(query.MaxResults).
		Context(ctx)

	if query.Order != "" {
		call = call.Order(query.Order)
	}
	if query.PageToken != "" {
		call = call.PageToken(query.PageToken)
	}

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}

	videos := make([]model.VideoSummary, 0, len(response.Items))
	for _, item := range response.Items {
		videos = append(videos, convertToVideoSummary(item))
	}

	var total int64
	if response.PageInfo != nil {
		total = response.PageInfo.TotalResults
	}
	return &dto.YouTubeSearchPage{Videos: videos, TotalResults: total}, nil
}

// convertToVideoSummary converts a search item, preferring the high resolution thumbnail
func convertToVideoSummary(item *youtube.SearchResult) model.VideoSummary {
	var summary model.VideoSummary
	if item.Id != nil {
		summary.ID = item.Id.VideoId
		summary.URL = model.WatchURL(item.Id.VideoId)
	}
	if item.Snippet == nil {
		return summary
	}
	summary.Title = item.Snippet.Title
	summary.Description = item.Snippet.Description
	summary.ChannelTitle = item.Snippet.ChannelTitle
	summary.PublishedAt = item.Snippet.PublishedAt

	if thumbs := item.Snippet.Thumbnails; thumbs != nil {
		switch {
		case thumbs.High != nil && thumbs.High.Url != "":
			summary.Thumbnail = thumbs.High.Url
		case thumbs.Default != nil:
			summary.Thumbnail = thumbs.Default.Url
		}
	}
	return summary
}
