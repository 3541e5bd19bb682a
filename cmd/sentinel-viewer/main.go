package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"go-sentinel/api"
	"go-sentinel/viewer"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Ignoring non-numeric %s=%q", key, v)
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("Ignoring non-numeric %s=%q", key, v)
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from the environment")
	}

	client := api.NewClient(getenv("SENTINEL_API_URL", "http://localhost:8000"))

	mapCfg := viewer.MapConfig{
		CenterLat: getenvFloat("MAP_CENTER_LAT", 37.5),
		CenterLon: getenvFloat("MAP_CENTER_LON", -119.5),
		Zoom:      getenvInt("MAP_ZOOM", 6),
		TileURL:   getenv("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"),
	}

	app := viewer.NewApp(
		client,
		mapCfg,
		getenvInt("FIRE_YEAR", 2015),
		getenv("FIRE_REGION", "CA"),
	)

	// The hazard layer fetch happens once, at startup; route and image
	// flows wait for their triggers.
	go app.Start(context.Background())

	r := viewer.SetupRouter(app)
	addr := getenv("VIEWER_ADDR", ":3000")
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start viewer:", err)
	}
}
