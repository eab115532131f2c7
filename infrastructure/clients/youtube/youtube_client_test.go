package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"media-portal/domain/dto"
	youtubeclient "media-portal/infrastructure/clients/youtube"
)

const searchBody = `{
  "kind": "youtube#searchListResponse",
  "pageInfo": {"totalResults": 1234, "resultsPerPage": 2},
  "items": [
    {
      "id": {"kind": "youtube#video", "videoId": "ABC123"},
      "snippet": {
        "publishedAt": "2025-01-05T10:00:00Z",
        "title": "AI weekly",
        "description": "news roundup",
        "channelTitle": "Tech Channel",
        "thumbnails": {
          "default": {"url": "https://i.ytimg.com/vi/ABC123/default.jpg"},
          "high": {"url": "https://i.ytimg.com/vi/ABC123/hqdefault.jpg"}
        }
      }
    },
    {
      "id": {"kind": "youtube#video", "videoId": "XYZ789"},
      "snippet": {
        "publishedAt": "2025-01-04T10:00:00Z",
        "title": "Low res only",
        "description": "",
        "channelTitle": "Other",
        "thumbnails": {
          "default": {"url": "https://i.ytimg.com/vi/XYZ789/default.jpg"}
        }
      }
    }
  ]
}`

type recorder struct {
	mu      sync.Mutex
	queries []url.Values
	paths   []string
}

func newSearchServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.queries = append(rec.queries, r.URL.Query())
		rec.paths = append(rec.paths, r.URL.Path)
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newClient(t *testing.T, srv *httptest.Server) *youtubeclient.Client {
	t.Helper()
	client, err := youtubeclient.NewYouTubeClient(
		context.Background(),
		&youtubeclient.Config{APIKey: "test-key"},
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return client.(*youtubeclient.Client)
}

func TestNewYouTubeClient_MissingKey(t *testing.T) {
	client, err := youtubeclient.NewYouTubeClient(context.Background(), &youtubeclient.Config{})
	assert.ErrorIs(t, err, youtubeclient.ErrMissingAPIKey)
	assert.Nil(t, client)

	client, err = youtubeclient.NewYouTubeClient(context.Background(), nil)
	assert.ErrorIs(t, err, youtubeclient.ErrMissingAPIKey)
	assert.Nil(t, client)
}

func TestClient_SearchVideos(t *testing.T) {
	srv, rec := newSearchServer(t, http.StatusOK, searchBody)
	client := newClient(t, srv)

	page, err := client.SearchVideos(context.Background(), &dto.YouTubeSearchQuery{
		Q:          "ai news",
		MaxResults: 25,
		Order:      "relevance",
		PageToken:  "page2",
	})
	require.NoError(t, err)

	require.Len(t, rec.queries, 1)
	assert.True(t, strings.HasSuffix(rec.paths[0], "/search"), "unexpected path %s", rec.paths[0])
	q := rec.queries[0]
	assert.Equal(t, "ai news", q.Get("q"))
	assert.Equal(t, "25", q.Get("maxResults"))
	assert.Equal(t, "relevance", q.Get("order"))
	assert.Equal(t, "page2", q.Get("pageToken"))
	assert.Equal(t, "video", q.Get("type"))
	assert.Equal(t, "snippet", q.Get("part"))

	assert.EqualValues(t, 1234, page.TotalResults)
	require.Len(t, page.Videos, 2)

	first := page.Videos[0]
	assert.Equal(t, "ABC123", first.ID)
	assert.Equal(t, "AI weekly", first.Title)
	assert.Equal(t, "news roundup", first.Description)
	assert.Equal(t, "Tech Channel", first.ChannelTitle)
	assert.Equal(t, "2025-01-05T10:00:00Z", first.PublishedAt)
	assert.Equal(t, "https://i.ytimg.com/vi/ABC123/hqdefault.jpg", first.Thumbnail)
	assert.Equal(t, "https://www.youtube.com/watch?v=ABC123", first.URL)

	assert.Equal(t, "https://i.ytimg.com/vi/XYZ789/default.jpg", page.Videos[1].Thumbnail, "falls back to default thumbnail")
}

func TestClient_SearchVideos_OmitsEmptyPageToken(t *testing.T) {
	srv, rec := newSearchServer(t, http.StatusOK, `{"items": []}`)
	client := newClient(t, srv)

	page, err := client.SearchVideos(context.Background(), &dto.YouTubeSearchQuery{Q: "x", MaxResults: 20})
	require.NoError(t, err)

	require.Len(t, rec.queries, 1)
	_, has := rec.queries[0]["pageToken"]
	assert.False(t, has)
	assert.Empty(t, page.Videos)
	assert.Zero(t, page.TotalResults)
}

func TestClient_SearchVideos_UpstreamError(t *testing.T) {
	srv, _ := newSearchServer(t, http.StatusForbidden, `{"error": {"code": 403, "message": "quotaExceeded"}}`)
	client := newClient(t, srv)

	page, err := client.SearchVideos(context.Background(), &dto.YouTubeSearchQuery{Q: "x", MaxResults: 20})
	assert.Error(t, err)
	assert.Nil(t, page)
	assert.Contains(t, err.Error(), "failed to search videos")
}

func TestClient_SearchVideos_ContextCanceled(t *testing.T) {
	srv, _ := newSearchServer(t, http.StatusOK, searchBody)
	client := newClient(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SearchVideos(ctx, &dto.YouTubeSearchQuery{Q: "x", MaxResults: 20})
	assert.Error(t, err)
}
