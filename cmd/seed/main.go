package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"gocart/config"
	"gocart/internal/seed"
)

// Pushes the demo catalog fixture into a RUNNING gocart instance through
// the admin API. The server already seeds itself on startup when
// SEED_DEMO_DATA=true; this binary exists for re-seeding a long-lived
// instance whose catalog was emptied.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Warning: .env file not found or failed to read. Loading configs from system environment only: %v", err)
	}

	cfg := config.LoadConfig()

	var baseURL string
	flag.StringVar(&baseURL, "url", fmt.Sprintf("http://localhost:%s", cfg.Port), "base URL of the running gocart server")
	flag.Parse()

	body, err := json.Marshal(seed.DemoProduct())
	if err != nil {
		log.Fatalf("seed: failed to encode fixture: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(baseURL+"/admin/products", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("seed: request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("seed: server returned %s (a 409 means the fixture SKUs already exist)", resp.Status)
	}

	log.Printf("✅ Demo catalog seeded at %s", baseURL)
}
