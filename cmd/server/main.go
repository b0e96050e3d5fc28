package main

import (
	"log"
	"net/http"

	"norhamtrans/internal/config"
	"norhamtrans/internal/logger"
	"norhamtrans/internal/middleware"
	"norhamtrans/internal/routes"
	"norhamtrans/internal/rules"
	"norhamtrans/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the snapshot database
	config.InitDB()

	// Rehydrate the in-memory state (or seed on first boot)
	st := store.New(config.GetDB())
	if err := st.Load(); err != nil {
		log.Fatalf("could not load state: %v", err)
	}
	engine := rules.New(st)

	// Setup Gin router (recovery and request logging are attached inside,
	// ahead of the route registrations)
	r := routes.SetupRouter(st, engine)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
