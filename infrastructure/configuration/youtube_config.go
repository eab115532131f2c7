package configuration

import "time"

const (
	// YouTubeSearchTimeout bounds a single upstream search call
	YouTubeSearchTimeout = 10 * time.Second
)

// YouTubeConfig represents the YouTube search proxy configuration
type YouTubeConfig struct {
	APIKey        string
	SearchTimeout time.Duration
	CacheDriver   string
	CacheCapacity int
	CacheTTL      time.Duration
}

// HasAPIKey reports whether an upstream key is configured
func (c *YouTubeConfig) HasAPIKey() bool {
	return c != nil && c.APIKey != ""
}

// GetYouTubeConfig returns the search proxy configuration resolved from C.
// A missing API key is not an error here; the search use case reports it per request.
func GetYouTubeConfig() *YouTubeConfig {
	return &YouTubeConfig{
		APIKey:        C.YouTube.APIKey,
		SearchTimeout: YouTubeSearchTimeout,
		CacheDriver:   C.Cache.Driver,
		CacheCapacity: C.Cache.Capacity,
		CacheTTL:      time.Duration(C.Cache.TTLSeconds) * time.Second,
	}
}
