package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sentinel/classifier"
	"go-sentinel/handlers"
)

// SetupRouter wires the backend endpoints consumed by the map client.
// defaultYear/defaultRegion scope the hazard set used by route calculation.
func SetupRouter(src handlers.IncidentSource, pl handlers.RouteComputer, clf classifier.Classifier, defaultYear int, defaultRegion string) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Climate Sentinel API",
		})
	})

	r.GET("/wildfires/:year/:region", func(c *gin.Context) {
		handlers.GetWildfires(c, src)
	})

	r.POST("/calculate-route", func(c *gin.Context) {
		handlers.CalculateRoute(c, pl, src, defaultYear, defaultRegion)
	})

	r.POST("/predict/wildfire", func(c *gin.Context) {
		handlers.PredictWildfire(c, clf)
	})

	return r
}
