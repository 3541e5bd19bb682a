package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"go-sentinel/types"
)

// IncidentSource loads the raw fire records for one year and region.
type IncidentSource interface {
	Load(ctx context.Context, year int, state string) ([]types.FireRecord, error)
}

// Incident sets are cached after the first load; the cron job re-warms the
// default region so repeat map loads stay cheap.
var (
	cacheMu       sync.Mutex
	wildfireCache = make(map[string][]types.WildfireIncident)
)

func cacheKey(year int, region string) string {
	return fmt.Sprintf("%d-%s", year, region)
}

// CachedIncidents returns the incident set for year/region, loading and
// caching it on first use.
func CachedIncidents(ctx context.Context, src IncidentSource, year int, region string) ([]types.WildfireIncident, error) {
	key := cacheKey(year, region)

	cacheMu.Lock()
	cached, ok := wildfireCache[key]
	cacheMu.Unlock()
	if ok {
		return cached, nil
	}

	return RefreshWildfireCache(ctx, src, year, region)
}

// RefreshWildfireCache reloads one region from the source and replaces its
// cache entry. An empty result is not cached so a later request retries.
func RefreshWildfireCache(ctx context.Context, src IncidentSource, year int, region string) ([]types.WildfireIncident, error) {
	records, err := src.Load(ctx, year, region)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	incidents := make([]types.WildfireIncident, 0, len(records))
	for _, rec := range records {
		incidents = append(incidents, rec.Incident())
	}

	cacheMu.Lock()
	wildfireCache[cacheKey(year, region)] = incidents
	cacheMu.Unlock()
	return incidents, nil
}

// GetWildfires handles GET /wildfires/:year/:region.
func GetWildfires(c *gin.Context, src IncidentSource) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Year must be a number."})
		return
	}
	region := c.Param("region")

	incidents, err := CachedIncidents(c.Request.Context(), src, year, region)
	if err != nil {
		log.Printf("Error loading wildfires for %d/%s: %v", year, region, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load wildfire data."})
		return
	}
	if len(incidents) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "No wildfire data found for the specified year and region."})
		return
	}

	c.JSON(http.StatusOK, incidents)
}
