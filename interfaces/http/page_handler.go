package http

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"

	"media-portal/domain/model"
	"media-portal/infrastructure/logger"
	"media-portal/interfaces/view"

	"github.com/gin-gonic/gin"
)

const siteTitle = "AI News"

type IPageHandler interface {
	Handle(ctx *gin.Context)
}

// PageHandler serves the HTML pages for every path the API does not own
type PageHandler struct {
	renderer *view.Renderer
}

func NewPageHandler(renderer *view.Renderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

// Handle dispatches on the request path
func (h *PageHandler) Handle(ctx *gin.Context) {
	switch ctx.Request.URL.Path {
	case "/":
		h.render(ctx, http.StatusOK, "index", h.pageData(ctx, ""))
	case "/video":
		h.video(ctx)
	default:
		data := h.pageData(ctx, "")
		data.Title = "404 - " + siteTitle
		data.Path = ctx.Request.URL.Path
		h.render(ctx, http.StatusNotFound, "not_found", data)
	}
}

// video renders the index with the modal open for the video described by the query
func (h *PageHandler) video(ctx *gin.Context) {
	video := &model.VideoSummary{
		ID:           ctx.Query("id"),
		Title:        ctx.Query("title"),
		Description:  ctx.Query("description"),
		ChannelTitle: ctx.Query("channel"),
		PublishedAt:  ctx.Query("publishedAt"),
		URL:          ctx.Query("url"),
	}
	if video.URL == "" && video.ID != "" {
		video.URL = model.WatchURL(video.ID)
	}

	closeHref := "/"
	if search := ctx.Query("search"); search != "" {
		closeHref = "/?" + url.Values{"search": {search}}.Encode()
	}
	modal := view.VideoModal{
		IsOpen:    true,
		Video:     video,
		Locale:    ctx.Query("language"),
		CloseHref: closeHref,
	}
	html, err := modal.Render()
	if err != nil {
		panic(err)
	}
	h.render(ctx, http.StatusOK, "index", h.pageData(ctx, html))
}

func (h *PageHandler) pageData(ctx *gin.Context, modal template.HTML) view.PageData {
	lang := view.LocaleRomanian
	if ctx.Query("language") == view.LocaleEnglish {
		lang = view.LocaleEnglish
	}
	return view.PageData{
		Title:  siteTitle,
		Lang:   lang,
		Search: ctx.Query("search"),
		Modal:  modal,
	}
}

// render buffers the page so a template failure can still become a 500
func (h *PageHandler) render(ctx *gin.Context, status int, name string, data view.PageData) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, data); err != nil {
		logger.GetLogger().WithField("error", err).Error("Page rendering failed")
		panic(err)
	}
	ctx.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
