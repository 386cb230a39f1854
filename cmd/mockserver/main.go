package main

import (
	"log"
	"os"

	"github.com/railbook/railbook-backend/internal/mockapi"
)

func main() {
	store := mockapi.NewStore()
	r := mockapi.NewRouter(store)

	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Mock server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start mock server:", err)
	}
}
