package doc

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// Handler serves the generated OpenAPI document and a browsable UI for it.
type Handler struct {
	environment string
	host        string
}

func newSwaggerHandler(environment, host string) *Handler {
	return &Handler{environment: environment, host: host}
}

func (h *Handler) serveSwaggerJSON(c *gin.Context) {
	originalJSON, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read Swagger doc"})
		return
	}

	var swaggerData map[string]interface{}
	if err := json.Unmarshal([]byte(originalJSON), &swaggerData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Swagger doc"})
		return
	}

	swaggerData["servers"] = serversFor(h.environment, h.host)

	modifiedJSON, err := json.Marshal(swaggerData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate modified Swagger doc"})
		return
	}

	c.Data(http.StatusOK, "application/json", modifiedJSON)
}

func serversFor(environment, host string) []map[string]interface{} {
	servers := []map[string]interface{}{
		{
			"url":         "http://" + host + "/api/v1",
			"description": "Local Development Server",
		},
	}

	if environment == "production" || environment == "staging" {
		servers = append(servers, map[string]interface{}{
			"url":         "https://" + host + "/api/v1",
			"description": "Deployed Server",
		})
	}

	return servers
}

func serveElements(c *gin.Context) {
	elementsHTML := `
<!DOCTYPE html>
<html>
<head>
    <title>Country View API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
    <style>
        body { margin: 0; padding: 0; height: 100vh; }
        elements-api { height: 100%; }
    </style>
</head>
<body>
    <elements-api
        apiDescriptionUrl="/swagger/doc.json"
        router="hash"
        layout="sidebar"
    ></elements-api>
</body>
</html>`
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, elementsHTML)
}

// Init mounts /swagger/doc.json and /docs.
func Init(r *gin.Engine, environment, host string) {
	h := newSwaggerHandler(environment, host)
	r.GET("/swagger/doc.json", h.serveSwaggerJSON)
	r.GET("/docs/*any", serveElements)
}
