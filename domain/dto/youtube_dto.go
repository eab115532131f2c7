package dto

import "media-portal/domain/model"

const (
	DefaultPage       = 1
	DefaultMaxResults = 20
	MaxResultsLimit   = 25
)

// YouTubeSearchRequest represents the normalized query of GET /api/youtube
type YouTubeSearchRequest struct {
	Search     string `form:"search" json:"search"`
	Page       int    `form:"page" json:"page"`
	MaxResults int64  `form:"maxResults" json:"maxResults"`
	Language   string `form:"language" json:"language"`
}

// Normalize applies defaults and clamps MaxResults to the upstream limit
func (r *YouTubeSearchRequest) Normalize() {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.MaxResults < 1 {
		r.MaxResults = DefaultMaxResults
	}
	if r.MaxResults > MaxResultsLimit {
		r.MaxResults = MaxResultsLimit
	}
}

// YouTubeSearchQuery is what the search client sends upstream
type YouTubeSearchQuery struct {
	Q          string
	MaxResults int64
	Order      string
	PageToken  string
}

// YouTubeSearchPage is what the search client returns from upstream
type YouTubeSearchPage struct {
	Videos       []model.VideoSummary
	TotalResults int64
}

// YouTubeSearchErrorResponse is the fallback body returned when a search fails
type YouTubeSearchErrorResponse struct {
	model.SearchResult
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
