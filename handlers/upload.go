package handlers

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quickpost/publisher/internal/publish"
	"github.com/quickpost/publisher/pkg/middleware"
)

// Publisher is the pipeline the upload endpoint drives.
type Publisher interface {
	Publish(ctx context.Context, title, content string) publish.Outcome
}

// UploadHandler serves the submission form and publishes posted submissions.
type UploadHandler struct {
	pub     Publisher
	baseURL string
}

// NewUploadHandler creates the /upload handler. baseURL prefixes the link on
// the success page; empty means site-relative.
func NewUploadHandler(pub Publisher, baseURL string) *UploadHandler {
	return &UploadHandler{pub: pub, baseURL: baseURL}
}

// Register mounts /upload for every method so unsupported ones get 405
// after authentication rather than gin's 404.
func (h *UploadHandler) Register(rg gin.IRouter) {
	rg.Any("/upload", h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.form(c)
	case http.MethodPost:
		h.submit(c)
	default:
		c.Header("Allow", "GET, POST")
		c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
	}
}

func (h *UploadHandler) form(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(uploadFormHTML))
}

func (h *UploadHandler) submit(c *gin.Context) {
	out := h.pub.Publish(c.Request.Context(), c.PostForm("title"), c.PostForm("content"))
	switch out.Kind {
	case publish.KindOK:
		link := h.baseURL + "/" + escapePath(out.Path)
		page := fmt.Sprintf(successHTML, html.EscapeString(link))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	case publish.KindInvalid:
		c.String(http.StatusBadRequest, "%s", out.Detail)
	default:
		c.String(http.StatusInternalServerError, "publish failed: %s (request %s)", out.Detail, c.GetString(middleware.RequestIDKey))
	}
}

// escapePath escapes each segment of a repository path so the link resolves
// to exactly that file ("?" and "#" are legal in committed names).
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

const uploadFormHTML = `<!DOCTYPE html>
<html lang="zh">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>发布文章</title>
    <style>
        body { font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: auto; }
        label { font-weight: bold; display: block; margin-top: 10px; }
        textarea, input { width: 100%; padding: 10px; margin-top: 5px; }
        button { padding: 10px 15px; margin-top: 10px; cursor: pointer; }
    </style>
</head>
<body>
    <h2>发布文章</h2>
    <form action="/upload" method="POST">
        <label for="title">标题:</label>
        <input type="text" id="title" name="title">
        <label for="content">内容:</label>
        <textarea id="content" name="content" rows="8"></textarea>
        <button type="submit">发布</button>
    </form>
</body>
</html>
`

const successHTML = `<!DOCTYPE html>
<html lang="zh">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>发布成功</title>
</head>
<body>
    <h2>文章发布成功！</h2>
    <p><a href="%[1]s">%[1]s</a></p>
</body>
</html>
`
