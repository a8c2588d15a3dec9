// cmd/server/main.go
package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/credicardpos/console-backend/internal/config"
	"github.com/credicardpos/console-backend/internal/dispatch"
	"github.com/credicardpos/console-backend/internal/handler"
	"github.com/credicardpos/console-backend/internal/seed"
	"github.com/credicardpos/console-backend/internal/service"
	"github.com/credicardpos/console-backend/internal/store"
	"github.com/credicardpos/console-backend/pkg/logger"
)

func main() {
	ctx := context.Background()

	// Load .env
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.Env == "development", nil)
	if !envLoaded {
		log.Warn().Msg("no .env file found, relying on OS environment variables")
	}

	// In-memory snapshot: directory, campaigns and events, seeded with the
	// demo dataset until the import pipeline lands.
	directory := store.NewDirectoryStore()
	campaigns := store.NewCampaignStore()
	events := store.NewEventStore()
	seed.Load(directory, campaigns, events)

	campaignService := service.NewCampaignService(directory, campaigns, events, log)

	sender := dispatch.SimulatedSender(cfg.Dispatch.FailureRate, rand.New(rand.NewSource(time.Now().UnixNano())))
	dispatcher := dispatch.New(campaigns, campaignService, sender, cfg.Dispatch.PerMessageDelay, log)

	campaignHandler := &handler.CampaignHandler{
		Service:    campaignService,
		Dispatcher: dispatcher,
		BaseCtx:    ctx,
	}
	clientHandler := &handler.ClientHandler{Service: campaignService}

	r := handler.NewRouter(campaignHandler, clientHandler)

	log.Info().Str("port", cfg.Port).Msg("🚀 Server running")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
