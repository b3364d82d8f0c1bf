package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nutrireco/go-reco-engine/api"
	"github.com/nutrireco/go-reco-engine/config"
	"github.com/nutrireco/go-reco-engine/internal/engine"
	"github.com/nutrireco/go-reco-engine/internal/registry"
)

func main() {
	// Define command-line flags
	var (
		help     = flag.Bool("help", false, "Show help message")
		version  = flag.Bool("version", false, "Show version information")
		port     = flag.String("port", "8080", "Port to run the server on")
		dataDir  = flag.String("data-dir", "./reco_data", "Directory to store dataset snapshots")
		apiKey   = flag.String("api-key", "", "Registry API key (defaults to RECO_API_KEY)")
		profiles = flag.String("profiles", "", "Optional YAML file with profile overrides")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Reco Engine - A keyword-based supplement recommendation service\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                            # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --profiles profiles.yaml   # Load profile overrides\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Reco Engine v1.0.0\n")
		fmt.Printf("Registry fetching, keyword features, and need-based ranking\n")
		return
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("RECO_API_KEY")
	}
	if key == "" {
		log.Fatal("No registry API key provided. Use --api-key or set RECO_API_KEY.")
	}

	profileTables, err := config.LoadProfiles(*profiles)
	if err != nil {
		log.Fatalf("Failed to load profiles: %v", err)
	}

	// Initialize the recommendation engine
	log.Printf("Using data directory: %s", *dataDir)
	fetcher := registry.NewClient(key)
	recoEngine := engine.NewEngine(*dataDir, profileTables, fetcher)

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, recoEngine)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
