package model

// VideoSummary is the projection of an upstream search item served to the front end.
type VideoSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	URL          string `json:"url"`
}

// SearchResult is the payload of GET /api/youtube.
// Values stored in the search cache are shared with responses and must not be mutated.
type SearchResult struct {
	Videos       []VideoSummary `json:"videos"`
	TotalResults int64          `json:"totalResults"`
	Search       string         `json:"search"`
	Page         int            `json:"page"`
	MaxResults   int64          `json:"maxResults"`
	Cached       bool           `json:"cached"`
	Timestamp    string         `json:"timestamp"`
}

// WatchURL returns the canonical watch page for a video id.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
