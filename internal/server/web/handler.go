// Package web exposes the page service's HTTP surface: page generation,
// page retrieval, and upload metadata recording.
package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safenotes/safenotes/internal/logging"
	"github.com/safenotes/safenotes/internal/server/media"
	"github.com/safenotes/safenotes/internal/server/models"
	"github.com/safenotes/safenotes/internal/server/pages"
)

type Handler struct {
	pages         pages.Repository
	media         media.Repository
	publicBaseURL string
	pageTTL       time.Duration
	log           logging.Logger

	// test seams
	now   func() time.Time
	newID func() string
}

func NewHandler(p pages.Repository, m media.Repository, publicBaseURL string, pageTTL time.Duration, log logging.Logger) *Handler {
	return &Handler{
		pages:         p,
		media:         m,
		publicBaseURL: publicBaseURL,
		pageTTL:       pageTTL,
		log:           log.With("component", "web"),
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

type generateRequest struct {
	Media []string `json:"media"`
}

// Generate renders an evidence page for 1..5 media URLs, stores it under a
// fresh id with the configured TTL, and returns the public page link.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, `Must include 1 to 5 media URLs in a "media" array.`)
		return
	}
	if len(req.Media) == 0 || len(req.Media) > 5 {
		c.String(http.StatusBadRequest, `Must include 1 to 5 media URLs in a "media" array.`)
		return
	}

	html, err := pages.Render(req.Media, h.pageTTL)
	if err != nil {
		h.log.Error(c.Request.Context(), "page render failed", "error", err)
		c.String(http.StatusInternalServerError, "Error generating HTML: "+err.Error())
		return
	}

	id := h.newID()
	if err := h.pages.Save(c.Request.Context(), id, html, h.pageTTL); err != nil {
		h.log.Error(c.Request.Context(), "page save failed", "error", err)
		c.String(http.StatusInternalServerError, "Error generating HTML: "+err.Error())
		return
	}

	h.log.Info(c.Request.Context(), "page generated", "id", id, "media", len(req.Media))
	c.JSON(http.StatusOK, gin.H{"html_url": h.publicBaseURL + "/embed?id=" + id})
}

// Embed serves a stored page. Expired and never-existing pages are
// indistinguishable on purpose.
func (h *Handler) Embed(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.String(http.StatusBadRequest, "Missing id")
		return
	}

	html, err := h.pages.Get(c.Request.Context(), id)
	if err != nil {
		c.String(http.StatusNotFound, "Page not found or expired")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// RecordMedia stores upload metadata for later housekeeping by the sweeper.
func (h *Handler) RecordMedia(c *gin.Context) {
	var m models.Media
	if err := c.ShouldBindJSON(&m); err != nil {
		c.String(http.StatusBadRequest, "invalid media record")
		return
	}
	if m.StorageKey == "" || m.PublicURL == "" {
		c.String(http.StatusBadRequest, "storage_key and public_url are required")
		return
	}
	if m.ID == "" {
		m.ID = h.newID()
	}
	if m.UploadedAt.IsZero() {
		m.UploadedAt = h.now()
	}

	if err := h.media.Insert(c.Request.Context(), &m); err != nil {
		h.log.Error(c.Request.Context(), "media record insert failed", "error", err)
		c.String(http.StatusInternalServerError, "error recording media")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": m.ID})
}
