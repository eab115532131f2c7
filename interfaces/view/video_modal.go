package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"media-portal/domain/model"
	"media-portal/web"

	"github.com/google/go-querystring/query"
)

const embedBaseURL = "https://www.youtube.com/embed/"

var modalTemplate = template.Must(template.ParseFS(web.FS, "components/video_modal.gohtml"))

// ClickTarget identifies where inside the modal a click landed
type ClickTarget int

const (
	TargetBackdrop ClickTarget = iota
	TargetContent
	TargetCloseButton
)

// embedParams autoplay the video and keep related videos to the same channel
type embedParams struct {
	Autoplay       int `url:"autoplay"`
	Rel            int `url:"rel"`
	ModestBranding int `url:"modestbranding"`
}

// EmbedURL returns the player URL for a video id
func EmbedURL(videoID string) string {
	v, err := query.Values(embedParams{Autoplay: 1, Rel: 0, ModestBranding: 1})
	if err != nil {
		return embedBaseURL + url.PathEscape(videoID)
	}
	return embedBaseURL + url.PathEscape(videoID) + "?" + v.Encode()
}

// VideoModal is a stateless view of (IsOpen, Video). Visibility belongs to the owner;
// the modal only reports close requests through OnClose.
type VideoModal struct {
	IsOpen  bool
	Video   *model.VideoSummary
	OnClose func()
	// Locale selects the publish date format, Romanian by default.
	Locale string
	// CloseHref is where the rendered page navigates when closing.
	CloseHref string
}

type modalData struct {
	Title         string
	EmbedURL      string
	ChannelTitle  string
	PublishedDate string
	Description   string
	CloseHref     string
}

// VideoID resolves the identifier to play, if the modal is active.
func (m VideoModal) VideoID() (string, bool) {
	if !m.IsOpen || m.Video == nil {
		return "", false
	}
	return ExtractVideoID(m.Video.URL)
}

// Render returns the overlay markup, or nothing when hidden or no identifier resolves.
func (m VideoModal) Render() (template.HTML, error) {
	id, ok := m.VideoID()
	if !ok {
		return "", nil
	}
	closeHref := m.CloseHref
	if closeHref == "" {
		closeHref = "/"
	}
	data := modalData{
		Title:         m.Video.Title,
		EmbedURL:      EmbedURL(id),
		ChannelTitle:  m.Video.ChannelTitle,
		PublishedDate: FormatPublishedDate(m.Video.PublishedAt, m.Locale),
		Description:   m.Video.Description,
		CloseHref:     closeHref,
	}
	var buf bytes.Buffer
	if err := modalTemplate.ExecuteTemplate(&buf, "video_modal", data); err != nil {
		return "", fmt.Errorf("render video modal: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Dispatch handles a click. Backdrop and close control request closing;
// clicks on the content never reach the backdrop.
func (m VideoModal) Dispatch(target ClickTarget) {
	if _, ok := m.VideoID(); !ok || m.OnClose == nil {
		return
	}
	switch target {
	case TargetBackdrop, TargetCloseButton:
		m.OnClose()
	case TargetContent:
	}
}
