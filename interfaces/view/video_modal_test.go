package view_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"media-portal/domain/model"
	"media-portal/interfaces/view"
)

func sampleVideo() *model.VideoSummary {
	return &model.VideoSummary{
		ID:           "ABC123",
		Title:        "AI weekly",
		Description:  "Weekly news roundup",
		ChannelTitle: "Tech Channel",
		PublishedAt:  "2025-01-05T10:00:00Z",
		URL:          "https://www.youtube.com/watch?v=ABC123&t=5",
	}
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url    string
		wantID string
		wantOK bool
	}{
		{url: "https://www.youtube.com/watch?v=ABC123&t=5", wantID: "ABC123", wantOK: true},
		{url: "https://youtu.be/XYZ789", wantID: "XYZ789", wantOK: true},
		{url: "https://www.youtube.com/embed/QQQ111?x=1", wantID: "QQQ111", wantOK: true},
		{url: "https://www.youtube.com/watch?v=HASH42#t=10", wantID: "HASH42", wantOK: true},
		{url: "https://youtu.be/LINE01\nnext", wantID: "LINE01", wantOK: true},
		{url: "https://m.youtube.com/watch?v=MOB555", wantID: "MOB555", wantOK: true},
		{url: "https://example.com/video", wantOK: false},
		{url: "https://example.com/watch?v=abc", wantOK: false},
		{url: "https://example.com/embed/abc", wantOK: false},
		{url: "https://www.youtube.com/watch?v=", wantOK: false},
		{url: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			id, ok := view.ExtractVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/ABC123?autoplay=1&modestbranding=1&rel=0", view.EmbedURL("ABC123"))
}

func TestVideoModal_RendersNothingWhenInactive(t *testing.T) {
	tests := []struct {
		name  string
		modal view.VideoModal
	}{
		{name: "closed", modal: view.VideoModal{IsOpen: false, Video: sampleVideo()}},
		{name: "no video", modal: view.VideoModal{IsOpen: true}},
		{name: "unrecognized url", modal: view.VideoModal{IsOpen: true, Video: &model.VideoSummary{Title: "x", URL: "https://example.com/video"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := tt.modal.Render()
			require.NoError(t, err)
			assert.Empty(t, html)
		})
	}
}

func TestVideoModal_Render(t *testing.T) {
	html, err := view.VideoModal{IsOpen: true, Video: sampleVideo(), CloseHref: "/?search=ai"}.Render()
	require.NoError(t, err)

	doc := parse(t, string(html))

	backdrop := doc.Find("[data-modal-backdrop]")
	require.Equal(t, 1, backdrop.Length())
	closeURL, _ := backdrop.Attr("data-close-url")
	assert.Equal(t, "/?search=ai", closeURL)
	assert.Equal(t, 1, backdrop.Find("[data-modal-content]").Length())

	assert.Equal(t, "AI weekly", strings.TrimSpace(doc.Find(".video-modal-header h2").Text()))
	assert.Equal(t, 1, doc.Find(".video-modal-header [data-modal-close]").Length())

	iframe := doc.Find("iframe")
	require.Equal(t, 1, iframe.Length())
	src, _ := iframe.Attr("src")
	assert.Equal(t, "https://www.youtube.com/embed/ABC123?autoplay=1&modestbranding=1&rel=0", src)
	allow, _ := iframe.Attr("allow")
	assert.Contains(t, allow, "autoplay")
	_, fullscreen := iframe.Attr("allowfullscreen")
	assert.True(t, fullscreen)

	player, _ := doc.Find(".video-modal-player").Attr("style")
	assert.Contains(t, player, "padding-bottom: 56.25%", "player keeps a 16:9 ratio")

	assert.Equal(t, "Tech Channel", strings.TrimSpace(doc.Find(".video-modal-channel").Text()))
	assert.Equal(t, "5 ianuarie 2025", strings.TrimSpace(doc.Find(".video-modal-date").Text()))
	assert.Equal(t, "Weekly news roundup", strings.TrimSpace(doc.Find(".video-modal-description").Text()))
}

func TestVideoModal_RenderEscapesText(t *testing.T) {
	video := sampleVideo()
	video.Title = `<script>alert("x")</script>`
	video.Description = `<b>bold</b>`

	html, err := view.VideoModal{IsOpen: true, Video: video}.Render()
	require.NoError(t, err)

	assert.NotContains(t, string(html), "<script>")
	doc := parse(t, string(html))
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, `<b>bold</b>`, strings.TrimSpace(doc.Find(".video-modal-description").Text()))
}

func TestVideoModal_Dispatch(t *testing.T) {
	tests := []struct {
		name      string
		open      bool
		target    view.ClickTarget
		wantCalls int
	}{
		{name: "backdrop closes", open: true, target: view.TargetBackdrop, wantCalls: 1},
		{name: "close control closes", open: true, target: view.TargetCloseButton, wantCalls: 1},
		{name: "content click is contained", open: true, target: view.TargetContent, wantCalls: 0},
		{name: "hidden modal ignores clicks", open: false, target: view.TargetBackdrop, wantCalls: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			modal := view.VideoModal{IsOpen: tt.open, Video: sampleVideo(), OnClose: func() { calls++ }}

			modal.Dispatch(tt.target)

			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestVideoModal_DispatchWithoutCallback(t *testing.T) {
	modal := view.VideoModal{IsOpen: true, Video: sampleVideo()}
	assert.NotPanics(t, func() { modal.Dispatch(view.TargetBackdrop) })
}

func TestFormatPublishedDate(t *testing.T) {
	assert.Equal(t, "5 ianuarie 2025", view.FormatPublishedDate("2025-01-05T10:00:00Z", ""))
	assert.Equal(t, "31 decembrie 2024", view.FormatPublishedDate("2024-12-31T23:00:00Z", view.LocaleRomanian))
	assert.Equal(t, "January 5, 2025", view.FormatPublishedDate("2025-01-05T10:00:00Z", view.LocaleEnglish))
	assert.Equal(t, "yesterday", view.FormatPublishedDate("yesterday", view.LocaleEnglish))
	assert.Equal(t, "", view.FormatPublishedDate("", view.LocaleEnglish))
}

func TestRenderer_IndexWithModal(t *testing.T) {
	r, err := view.NewRenderer()
	require.NoError(t, err)

	modal, err := view.VideoModal{IsOpen: true, Video: sampleVideo()}.Render()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "index", view.PageData{Title: "Stiri AI", Search: "ai", Modal: modal}))

	doc := parse(t, buf.String())
	assert.Equal(t, "Stiri AI", doc.Find("title").Text())
	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "ro", lang)
	value, _ := doc.Find("input[name=search]").Attr("value")
	assert.Equal(t, "ai", value)
	assert.Equal(t, 1, doc.Find("main [data-modal-backdrop] iframe").Length())
	assert.Equal(t, 1, doc.Find(`script[src="/static/modal.js"]`).Length())
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := view.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing", view.PageData{}))
}
