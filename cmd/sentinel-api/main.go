package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"go-sentinel/classifier"
	"go-sentinel/cronjobs"
	"go-sentinel/db"
	"go-sentinel/planner"
	"go-sentinel/routes"
	"go-sentinel/types"
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

// seed loads a JSON array of fire records into Firestore. Used once to
// import the historical dataset.
func seed(store *db.WildfireStore, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var records []types.FireRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	if err := store.Save(context.Background(), records); err != nil {
		log.Fatalf("Failed to save seed records: %v", err)
	}
	log.Printf("Seeded %d fire records from %s", len(records), path)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from the environment")
	}

	seedPath := flag.String("seed", "", "JSON file of fire records to import into Firestore, then exit")
	flag.Parse()

	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore()

	store := db.NewWildfireStore(firestoreClient)
	if *seedPath != "" {
		seed(store, *seedPath)
		return
	}

	year := getenvInt("FIRE_YEAR", 2015)
	region := getenv("FIRE_REGION", "CA")

	pl, err := planner.New()
	if err != nil {
		log.Fatalf("Failed to initialize route planner: %v", err)
	}

	clf, err := classifier.FromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize classifier: %v", err)
	}

	cronjobs.InitCronJobs(store, year, region)

	r := routes.SetupRouter(store, pl, clf, year, region)
	addr := getenv("API_ADDR", ":8000")
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
