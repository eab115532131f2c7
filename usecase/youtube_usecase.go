package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"media-portal/domain/dto"
	"media-portal/domain/model"
	"media-portal/domain/repository"
	"media-portal/infrastructure/cache"
	"media-portal/infrastructure/logger"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultQueryEnglish  = "artificial intelligence technology news"
	DefaultQueryRomanian = "inteligenta artificiala tehnologie stiri"

	searchOrder = "relevance"
)

var ErrMissingAPIKey = errors.New("YouTube API key not configured")

// IYouTubeUseCase defines the YouTube search proxy operation
type IYouTubeUseCase interface {
	SearchVideos(ctx context.Context, req *dto.YouTubeSearchRequest) (*model.SearchResult, error)
}

// YouTubeUseCase implements cache-aside search over the upstream API
type YouTubeUseCase struct {
	youtubeRepo repository.IYouTubeSearch // nil when no API key is configured
	cache       repository.ISearchCache
	timeout     time.Duration
	now         func() time.Time
	inflight    singleflight.Group
}

// NewYouTubeUseCase creates a new YouTube use case instance
func NewYouTubeUseCase(youtubeRepo repository.IYouTubeSearch, searchCache repository.ISearchCache, timeout time.Duration) *YouTubeUseCase {
	if searchCache == nil {
		searchCache = cache.NewSearchCache(cache.DefaultCapacity, cache.DefaultTTL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &YouTubeUseCase{
		youtubeRepo: youtubeRepo,
		cache:       searchCache,
		timeout:     timeout,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for response timestamps (fluent)
func (u *YouTubeUseCase) WithClock(now func() time.Time) *YouTubeUseCase {
	u.now = now
	return u
}

// SearchVideos serves a search from cache or upstream. A hit returns the stored result as is.
// Identical concurrent misses share one upstream call, which is detached from the
// cancellation of whichever caller started it.
func (u *YouTubeUseCase) SearchVideos(ctx context.Context, req *dto.YouTubeSearchRequest) (*model.SearchResult, error) {
	if u.youtubeRepo == nil {
		return nil, ErrMissingAPIKey
	}
	if req == nil {
		req = &dto.YouTubeSearchRequest{}
	}
	req.Normalize()

	key := cache.SearchKey(req.Search, req.Page, req.MaxResults)
	if cached, ok := u.cache.Get(ctx, key); ok {
		logger.GetLogger().WithField("key", key).Debug("YouTube search served from cache")
		return cached, nil
	}

	v, err, shared := u.inflight.Do(key, func() (interface{}, error) {
		return u.fetch(ctx, key, req)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.GetLogger().WithField("key", key).Debug("YouTube search coalesced with in-flight request")
	}
	return v.(*model.SearchResult), nil
}

func (u *YouTubeUseCase) fetch(ctx context.Context, key string, req *dto.YouTubeSearchRequest) (*model.SearchResult, error) {
	query := &dto.YouTubeSearchQuery{
		Q:          EffectiveQuery(req.Search, req.Language),
		MaxResults: req.MaxResults,
		Order:      searchOrder,
		PageToken:  PageToken(req.Page),
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.timeout)
	defer cancel()

	page, err := u.youtubeRepo.SearchVideos(callCtx, query)
	if err != nil {
		return nil, fmt.Errorf("youtube search %q: %w", query.Q, err)
	}

	videos := page.Videos
	if videos == nil {
		videos = []model.VideoSummary{}
	}
	result := &model.SearchResult{
		Videos:       videos,
		TotalResults: page.TotalResults,
		Search:       req.Search,
		Page:         req.Page,
		MaxResults:   req.MaxResults,
		Cached:       false,
		Timestamp:    u.now().UTC().Format(time.RFC3339Nano),
	}
	u.cache.Set(callCtx, key, result)

	logger.GetLogger().WithFields(map[string]interface{}{
		"key":    key,
		"videos": len(videos),
		"total":  page.TotalResults,
	}).Info("YouTube search fetched from upstream")
	return result, nil
}

// EffectiveQuery resolves the upstream query: explicit search first, then the language default
func EffectiveQuery(search, language string) string {
	if search != "" {
		return search
	}
	if language == "ro" {
		return DefaultQueryRomanian
	}
	return DefaultQueryEnglish
}

// PageToken returns the literal "page{N}" token sent for pages after the first.
// YouTube issues opaque page tokens, so upstream rejects or ignores this value.
func PageToken(page int) string {
	if page > 1 {
		return fmt.Sprintf("page%d", page)
	}
	return ""
}

// FallbackResult builds the placeholder response served when a search fails
func FallbackResult(req *dto.YouTubeSearchRequest, message string, now time.Time) *dto.YouTubeSearchErrorResponse {
	ts := now.UTC().Format(time.RFC3339Nano)
	search, page, maxResults := "", dto.DefaultPage, int64(dto.DefaultMaxResults)
	if req != nil {
		search, page, maxResults = req.Search, req.Page, req.MaxResults
	}
	return &dto.YouTubeSearchErrorResponse{
		SearchResult: model.SearchResult{
			Videos: []model.VideoSummary{{
				ID:           "demo",
				Title:        "Demo Video - YouTube API Unavailable",
				Description:  "Live results could not be loaded. Configure YOUTUBE_API_KEY or try again later.",
				Thumbnail:    "https://placehold.co/480x360/png?text=Video+Unavailable",
				ChannelTitle: "Demo Channel",
				PublishedAt:  ts,
				URL:          "https://www.youtube.com",
			}},
			TotalResults: 1,
			Search:       search,
			Page:         page,
			MaxResults:   maxResults,
			Cached:       false,
			Timestamp:    ts,
		},
		Error:   true,
		Message: message,
	}
}
