package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"media-portal/domain/dto"
	"media-portal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// Paths probed relative to the working directory
const (
	PlayerTemplatePath = "web/components/video_modal.gohtml"
	ComponentsDir      = "web/components"
	PagesDir           = "web/pages"
	StaticDir          = "web/static"
)

type IDeploymentHandler interface {
	Check(ctx *gin.Context)
}

type DeploymentHandler struct {
	gitCommit   string
	environment string
	getwd       func() (string, error)
	stat        func(string) (os.FileInfo, error)
	now         func() time.Time
}

func NewDeploymentHandler(gitCommit, environment string) *DeploymentHandler {
	if gitCommit == "" {
		gitCommit = "unknown"
	}
	return &DeploymentHandler{
		gitCommit:   gitCommit,
		environment: environment,
		getwd:       os.Getwd,
		stat:        os.Stat,
		now:         time.Now,
	}
}

// WithFS swaps the filesystem probes (fluent)
func (h *DeploymentHandler) WithFS(getwd func() (string, error), stat func(string) (os.FileInfo, error)) *DeploymentHandler {
	h.getwd = getwd
	h.stat = stat
	return h
}

// Check handles /api/deployment-check
func (h *DeploymentHandler) Check(ctx *gin.Context) {
	wd, err := h.getwd()
	if err != nil {
		h.fail(ctx, wd, err)
		return
	}

	var files dto.DeploymentFiles
	probes := []struct {
		path   string
		target *bool
	}{
		{PlayerTemplatePath, &files.YouTubePlayer},
		{ComponentsDir, &files.Components},
		{PagesDir, &files.Pages},
		{StaticDir, &files.Lib},
	}
	for _, p := range probes {
		exists, err := h.exists(filepath.Join(wd, p.path))
		if err != nil {
			h.fail(ctx, wd, err)
			return
		}
		*p.target = exists
	}

	ctx.JSON(http.StatusOK, dto.DeploymentCheckResponse{
		Status:           "ok",
		DeploymentTime:   h.now().UTC().Format(time.RFC3339Nano),
		GitCommit:        h.gitCommit,
		Files:            files,
		WorkingDirectory: wd,
		NodeEnv:          h.environment,
	})
}

func (h *DeploymentHandler) exists(path string) (bool, error) {
	_, err := h.stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (h *DeploymentHandler) fail(ctx *gin.Context, wd string, err error) {
	logger.GetLogger().WithField("error", err).Error("Deployment check failed")
	ctx.JSON(http.StatusInternalServerError, dto.DeploymentCheckError{
		Status:           "error",
		Message:          err.Error(),
		WorkingDirectory: wd,
	})
}
