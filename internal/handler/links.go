package handler

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shortlink/shortlink/internal/config"
	"shortlink/shortlink/internal/model"
	"shortlink/shortlink/internal/service"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	errContentType   = "Content-Type must be application/json"
	errMissingURL    = "Missing field: url"
	errMalformedURL  = "Malformed or unsupported URL"
	errSelfReference = "Refusing to shorten a URL pointing at this service"
	errNotFound      = "Short link not found"
	errInternal      = "Internal server error"
)

const qrImageSize = 256

type Handler struct {
	cfg    config.Config
	srv    service.Links
	logger *zap.Logger
}

func New(cfg config.Config, srv service.Links, logger *zap.Logger) *Handler {
	return &Handler{cfg: cfg, srv: srv, logger: logger}
}

// POST /api/shorten
func (h *Handler) Shorten(c *gin.Context) {
	ct := c.GetHeader("Content-Type")

	mt, _, err := mime.ParseMediaType(ct)
	if err != nil || mt != "application/json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errContentType})
		return
	}

	var req model.CreateReq

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingURL})
		return
	}

	raw := strings.TrimSpace(req.URL)

	parsed, err := url.ParseRequestURI(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMalformedURL})
		return
	}

	if base := h.cfg.BaseHost(); base != "" && parsed.Host == base {
		c.JSON(http.StatusBadRequest, gin.H{"error": errSelfReference})
		return
	}

	rec, created, err := h.srv.Shorten(c.Request.Context(), parsed.String(), req.ExpiresAt)
	if err != nil {
		h.logger.Error("shorten failed", zap.String("url", parsed.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	resp := model.CreateResp{
		ShortURL:  h.cfg.BaseURL + rec.Code,
		ShortCode: rec.Code,
	}

	if created {
		c.JSON(http.StatusCreated, resp)
	} else {
		c.JSON(http.StatusOK, resp)
	}
}

// GET /:code -> redirect
func (h *Handler) Redirect(c *gin.Context) {
	code := c.Param("code")

	originalURL, err := h.srv.Resolve(c.Request.Context(), code)

	var expErr *service.ExpiredError
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", notFoundPage(code))
		return
	case errors.As(err, &expErr):
		c.Data(http.StatusGone, "text/html; charset=utf-8", expiredPage(code, expErr.ExpiresAt))
		return
	case err != nil:
		h.logger.Error("resolve failed", zap.String("code", code), zap.Error(err))
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", errorPage())
		return
	}

	// The redirect already resolved; a failed increment is logged, not surfaced.
	if err := h.srv.CountClick(c.Request.Context(), code); err != nil {
		h.logger.Error("click count failed", zap.String("code", code), zap.Error(err))
	}

	c.Redirect(http.StatusFound, originalURL)
}

// GET /api/stats/:code
func (h *Handler) Stats(c *gin.Context) {
	code := c.Param("code")

	rec, err := h.srv.Stats(c.Request.Context(), code)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
		return
	}
	if err != nil {
		h.logger.Error("stats failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	c.JSON(http.StatusOK, model.StatsResp{
		ShortCode:   rec.Code,
		OriginalURL: rec.OriginalURL,
		ClickCount:  rec.ClickCount,
		CreatedAt:   rec.CreatedAt,
		ExpiresAt:   rec.ExpiresAt,
	})
}

// GET /api/qr/:code -> PNG encoding the full short URL
func (h *Handler) QR(c *gin.Context) {
	code := c.Param("code")

	if _, err := h.srv.Stats(c.Request.Context(), code); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
			return
		}
		h.logger.Error("qr lookup failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	png, err := qrcode.Encode(h.cfg.BaseURL+code, qrcode.Medium, qrImageSize)
	if err != nil {
		h.logger.Error("qr encode failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// GET /api/debug/urls
func (h *Handler) DebugURLs(c *gin.Context) {
	recs, err := h.srv.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("debug listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}

	out := make([]model.DebugURL, 0, len(recs))
	for _, rec := range recs {
		out = append(out, model.DebugURL{ShortCode: rec.Code, OriginalURL: rec.OriginalURL})
	}

	c.JSON(http.StatusOK, out)
}

// GET /
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "shortlink",
		"message": "URL shortener is running",
	})
}

func notFoundPage(code string) []byte {
	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Not Found</title></head>
<body>
<h1>404 - Short link not found</h1>
<p>No short link exists for <strong>%s</strong>.</p>
</body>
</html>`, code))
}

func expiredPage(code string, expiredAt time.Time) []byte {
	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Link Expired</title></head>
<body>
<h1>410 - Short link expired</h1>
<p>The short link <strong>%s</strong> expired at %s.</p>
</body>
</html>`, code, expiredAt.Format(time.RFC3339)))
}

func errorPage() []byte {
	return []byte(`<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
<h1>500 - Something went wrong</h1>
</body>
</html>`)
}
