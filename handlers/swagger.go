package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the publisher.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>quickpost-publisher Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the publisher endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "quickpost-publisher", "version": "v0.1.0" },
  "components": { "securitySchemes": { "basic": { "type": "http", "scheme": "basic" } } },
  "paths": {
    "/upload": {
      "get": {
        "summary": "Submission form",
        "security": [{ "basic": [] }],
        "responses": { "200": { "description": "HTML form with title and content fields" }, "401": { "description": "missing or invalid credentials" } }
      },
      "post": {
        "summary": "Publish a submission to the GitHub repository",
        "security": [{ "basic": [] }],
        "requestBody": { "content": {
          "application/x-www-form-urlencoded": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"}}}},
          "multipart/form-data": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"}}}}
        }},
        "responses": {
          "200": { "description": "confirmation page linking to the published path" },
          "400": { "description": "title and content both empty" },
          "401": { "description": "missing or invalid credentials" },
          "500": { "description": "GitHub write failed" }
        }
      }
    },
    "/api/publications": {
      "get": { "summary": "List published submissions, newest first", "security": [{ "basic": [] }], "parameters": [{"name":"limit","in":"query","schema":{"type":"integer"}}], "responses": { "200": { "description": "publications" } } }
    },
    "/api/publications/{id}": {
      "get": { "summary": "Get one publication", "security": [{ "basic": [] }], "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "publication" }, "404": { "description": "not found" } } }
    },
    "/hello": { "get": { "summary": "Diagnostic greeting", "responses": { "200": { "description": "plain text greeting" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
