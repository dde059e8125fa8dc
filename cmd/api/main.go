package main

import (
	"fmt"
	"net/http"
	"os"

	apimodel "proforma/pkg/api/model"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	addr := os.Getenv("PROFORMA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	http.HandleFunc("/api/model", apimodel.HandleBuildModel)

	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - GET  /api/model        (default horizon)")
	fmt.Println("  - POST /api/model        {\"years\": N}")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
