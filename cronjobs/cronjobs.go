package cronjobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"go-sentinel/handlers"
)

// InitCronJobs starts the background schedule: the default region's
// wildfire cache is re-warmed hourly so the first map load after a cold
// start or a Firestore update does not eat the full query cost.
func InitCronJobs(src handlers.IncidentSource, year int, region string) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 1h", func() {
		log.Printf("Refreshing wildfire cache for %d/%s...", year, region)
		incidents, err := handlers.RefreshWildfireCache(context.Background(), src, year, region)
		if err != nil {
			log.Printf("Error refreshing wildfire cache: %v", err)
			return
		}
		log.Printf("Wildfire cache refreshed: %d incidents", len(incidents))
	})
	if err != nil {
		log.Printf("Error scheduling wildfire cache refresh: %v", err)
	}

	c.Start()
	return c
}
