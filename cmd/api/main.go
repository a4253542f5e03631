package main

import (
	"context"
	"log"

	"github.com/justsurfingit/jobboard/internal/apiclient"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/flows"
	"github.com/justsurfingit/jobboard/internal/handlers"
	"github.com/justsurfingit/jobboard/internal/runner"
	"github.com/justsurfingit/jobboard/internal/services"
	"github.com/justsurfingit/jobboard/internal/wizard"
)

func main() {
	// 1. Load configuration (.env is optional)
	cfg := config.Load()

	// 2. Pick where finished wizards go: the external API or the local store
	var (
		submitter  wizard.Submitter
		directory  services.JobDirectory
		jobService *services.JobService
	)
	if cfg.UseRemoteAPI() {
		client, err := apiclient.New(cfg.APIBaseURL, apiclient.WithRateLimit(cfg.APIRateLimit, cfg.APIBurst))
		if err != nil {
			log.Fatal("Invalid API configuration:", err)
		}
		log.Printf("🌐 Submitting to external API at %s", cfg.APIBaseURL)
		submitter = &services.RemoteSubmitter{Client: client}
		directory = &services.RemoteDirectory{Client: client}
	} else {
		log.Println("🗄️  No API_BASE_URL set, using the local database")
		db := database.Connect(cfg.DatabaseURL)
		jobService = services.NewJobService(db)
		submitter = &services.LocalSubmitter{
			Jobs:     jobService,
			Profiles: services.NewProfileService(db),
			Accounts: services.NewAccountService(db),
		}
		directory = jobService
	}

	// 3. AI assistance is optional; without a key the prefill endpoints answer 503
	llmService, err := services.NewGeminiLLMService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("⚠️  AI assistance disabled: %v", err)
	}

	// 4. Wizard hosting
	manager := runner.NewWizardManager(flows.NewCatalog(submitter), cfg.WizardTTL)
	defer manager.Close()

	// 5. Handlers & router
	wizardHandler := handlers.NewWizardHandler(manager, llmService)
	jobHandler := handlers.NewJobHandler(llmService, jobService, directory)
	r := handlers.NewRouter(wizardHandler, jobHandler, cfg.CORSOrigins)

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
