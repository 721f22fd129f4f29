package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickpost/publisher/pkg/logger"
)

// HelloMessage is the liveness text served on /hello.
const HelloMessage = "Hello from Cloudflare Pages Functions!"

// RegisterHello mounts the unauthenticated /hello check.
func RegisterHello(r gin.IRouter) {
	r.GET("/hello", func(c *gin.Context) {
		logger.Debugf("hello from %s", c.ClientIP())
		c.String(http.StatusOK, HelloMessage)
	})
}
