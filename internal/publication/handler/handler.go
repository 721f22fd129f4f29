package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quickpost/publisher/internal/publication/service"
)

// RegisterPublicationRoutes exposes the read-only publication log on rg.
// Authentication is the caller's concern.
func RegisterPublicationRoutes(rg gin.IRouter, svc *service.Service) {
	rg.GET("/api/publications", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		list, err := svc.List(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	rg.GET("/api/publications/:id", func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	})
}
