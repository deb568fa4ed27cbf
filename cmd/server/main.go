package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/cesam-goiania/encontro-api/internal/auth"
	"github.com/cesam-goiania/encontro-api/internal/config"
	"github.com/cesam-goiania/encontro-api/internal/database"
	"github.com/cesam-goiania/encontro-api/internal/handlers"
	"github.com/cesam-goiania/encontro-api/internal/notifier"
	"github.com/cesam-goiania/encontro-api/internal/roster"
	"github.com/cesam-goiania/encontro-api/internal/store"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	rosterStore := store.New(db, cfg.DefaultCapacity)
	service := roster.NewService(rosterStore)

	// Optional Discord notifications for new admissions
	var admissionNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			admissionNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg)
	registrationHandler := handlers.NewRegistrationHandler(service, admissionNotifier, cfg)
	adminHandler := handlers.NewAdminHandler(rosterStore, service, authHandler)
	exportHandler := handlers.NewExportHandler(rosterStore)
	eventHandler := handlers.NewEventHandler()

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, authHandler, registrationHandler, adminHandler, exportHandler, eventHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
