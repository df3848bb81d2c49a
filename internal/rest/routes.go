package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	apiV1Prefix = "/api/v1"

	articlesPath       = apiV1Prefix + "/articles"
	articlePath        = articlesPath + "/:id"
	autoSavePath       = articlePath + "/autosave"
	submitPath         = articlePath + "/submit"
	approvePath        = articlePath + "/approve"
	rejectPath         = articlePath + "/reject"
	publishPath        = articlePath + "/publish"
	directPublishPath  = articlePath + "/direct-publish"
	archivePath        = articlePath + "/archive"
	articleCommentPath = articlePath + "/comments"
	commentPath        = apiV1Prefix + "/comments/:id"

	healthPath  = "/health"
	metricsPath = "/metrics"
)

// RegisterRoutes builds the echo instance serving the editorial API.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware())

	h.registerAPIRoutes(e)

	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))

	return e
}

func (h *Handler) registerAPIRoutes(e *echo.Echo) {
	e.POST(articlesPath, h.CreateArticle)
	e.GET(articlesPath, h.ListArticles)
	e.GET(articlePath, h.GetArticle)
	e.DELETE(articlePath, h.DeleteArticle)
	e.PUT(autoSavePath, h.AutoSave)

	e.POST(submitPath, h.SubmitForReview)
	e.POST(approvePath, h.ApproveArticle)
	e.POST(rejectPath, h.RejectArticle)
	e.POST(publishPath, h.PublishArticle)
	e.POST(directPublishPath, h.DirectPublish)
	e.POST(archivePath, h.ArchiveArticle)

	e.GET(articleCommentPath, h.ListComments)
	e.POST(articleCommentPath, h.AddComment)
	e.DELETE(commentPath, h.DeleteComment)
}

func (h *Handler) loggingMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.LogAttrs(c.Request().Context(), slog.LevelInfo, "HTTP request",
				slog.String("method", v.Method),
				slog.String("path", v.URI),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("remote_addr", v.RemoteIP),
			)
			return nil
		},
	})
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request().Context()); err != nil {
			h.log.Error("health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
