package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"media-portal/domain/dto"
	"media-portal/infrastructure/logger"
	"media-portal/usecase"

	"github.com/gin-gonic/gin"
)

// IYouTubeHandler defines the interface for the YouTube search proxy
type IYouTubeHandler interface {
	Search(ctx *gin.Context)
}

// YouTubeHandler implements the YouTube HTTP handlers
type YouTubeHandler struct {
	youtubeUseCase usecase.IYouTubeUseCase
	now            func() time.Time
}

// NewYouTubeHandler creates a new YouTube handler instance
func NewYouTubeHandler(youtubeUseCase usecase.IYouTubeUseCase) IYouTubeHandler {
	return &YouTubeHandler{
		youtubeUseCase: youtubeUseCase,
		now:            time.Now,
	}
}

// Search handles ANY /api/youtube
func (h *YouTubeHandler) Search(ctx *gin.Context) {
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
	ctx.Header("Access-Control-Allow-Headers", "Content-Type")

	switch ctx.Request.Method {
	case http.MethodOptions:
		ctx.Status(http.StatusOK)
		return
	case http.MethodGet:
	default:
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
		return
	}

	req := parseSearchRequest(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.GetLogger().WithField("panic", r).Error("YouTube search panicked")
			h.fallback(ctx, req, fmt.Errorf("%v", r))
		}
	}()

	if h.youtubeUseCase == nil {
		h.fallback(ctx, req, usecase.ErrMissingAPIKey)
		return
	}

	result, err := h.youtubeUseCase.SearchVideos(ctx.Request.Context(), req)
	if err != nil {
		h.fallback(ctx, req, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (h *YouTubeHandler) fallback(ctx *gin.Context, req *dto.YouTubeSearchRequest, err error) {
	logger.GetLogger().WithFields(map[string]interface{}{
		"error":  err.Error(),
		"search": req.Search,
		"page":   req.Page,
	}).Error("YouTube search failed, serving fallback")
	ctx.JSON(http.StatusInternalServerError, usecase.FallbackResult(req, err.Error(), h.now()))
}

// parseSearchRequest reads the query leniently: unparseable numbers fall back to defaults
func parseSearchRequest(ctx *gin.Context) *dto.YouTubeSearchRequest {
	req := &dto.YouTubeSearchRequest{
		Search:   ctx.Query("search"),
		Language: ctx.Query("language"),
	}
	if page, err := strconv.Atoi(ctx.Query("page")); err == nil {
		req.Page = page
	}
	if maxResults, err := strconv.ParseInt(ctx.Query("maxResults"), 10, 64); err == nil {
		req.MaxResults = maxResults
	}
	req.Normalize()
	return req
}
