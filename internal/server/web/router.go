package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires routes and middlewares.
func SetupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/generate", h.Generate)
	r.GET("/embed", h.Embed)
	r.POST("/media", h.RecordMedia)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Not found")
	})

	return r
}
