package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sentinel/planner"
	"go-sentinel/types"
)

// RouteComputer is what the handler needs from the planner.
type RouteComputer interface {
	SafeRoute(ctx context.Context, rr types.RouteRequest, hazards []types.WildfireIncident) ([][2]float64, error)
}

// CalculateRoute handles POST /calculate-route. Hazards for the default
// region are folded in server-side; the client never re-derives them.
func CalculateRoute(c *gin.Context, pl RouteComputer, src IncidentSource, year int, region string) {
	var rr types.RouteRequest
	if err := c.ShouldBindJSON(&rr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid route request body."})
		return
	}

	hazards, err := CachedIncidents(c.Request.Context(), src, year, region)
	if err != nil {
		log.Printf("Error loading hazards for route calculation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load wildfire data."})
		return
	}

	route, err := pl.SafeRoute(c.Request.Context(), rr, hazards)
	if err != nil {
		if errors.Is(err, planner.ErrNoSafePath) {
			c.JSON(http.StatusNotFound, gin.H{"detail": planner.ErrNoSafePath.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("An internal server error occurred: %v", err)})
		return
	}

	c.JSON(http.StatusOK, types.RouteResponse{Route: route})
}
