package viewer

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sentinel/flow"
)

//go:embed templates/index.html
var templateFS embed.FS

// SetupRouter exposes the map page and the trigger endpoints. Triggers map
// one-to-one onto the user actions of the flows: edit a field, press
// calculate, choose a file, press analyze.
func SetupRouter(app *App) *gin.Engine {
	r := gin.Default()

	tmpl := template.Must(template.ParseFS(templateFS, "templates/index.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"CenterLat": app.Map.CenterLat,
			"CenterLon": app.Map.CenterLon,
			"Zoom":      app.Map.Zoom,
			"TileURL":   app.Map.TileURL,
		})
	})

	r.GET("/api/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, app.View())
	})

	r.POST("/api/coords", func(c *gin.Context) {
		var req struct {
			Field string `json:"field"`
			Value string `json:"value"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}
		app.SetCoord(req.Field, req.Value)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.POST("/api/route", func(c *gin.Context) {
		err := app.Planner.Calculate(c.Request.Context(), app.Coords.Start(), app.Coords.End())
		if errors.Is(err, flow.ErrBusy) {
			c.JSON(http.StatusConflict, gin.H{"detail": "A route calculation is already running."})
			return
		}
		// Flow errors are surfaced through the view's shared error slot.
		c.JSON(http.StatusOK, app.View())
	})

	r.POST("/api/image", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "No file provided."})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not read file."})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not read file."})
			return
		}
		app.Classifier.Stage(fh.Filename, data)
		c.JSON(http.StatusOK, gin.H{"staged": fh.Filename})
	})

	r.POST("/api/analyze", func(c *gin.Context) {
		err := app.Classifier.Analyze(c.Request.Context())
		if errors.Is(err, flow.ErrBusy) {
			c.JSON(http.StatusConflict, gin.H{"detail": "An analysis is already running."})
			return
		}
		c.JSON(http.StatusOK, app.View())
	})

	return r
}
