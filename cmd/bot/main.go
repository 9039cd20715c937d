package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/character-forge/internal/config"
	"github.com/KirkDiggler/character-forge/internal/handlers/discord"
	"github.com/KirkDiggler/character-forge/internal/logging"
	"github.com/KirkDiggler/character-forge/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	} else {
		logrus.Info("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Discord.Validate(); err != nil {
		logrus.Fatalf("Invalid Discord config: %v", err)
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	logrus.WithField("app_id", cfg.Discord.AppID).Info("starting bot")
	if cfg.Discord.GuildID != "" {
		logrus.WithField("guild_id", cfg.Discord.GuildID).Info("using guild commands")
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logrus.Fatalf("Failed to create Discord session: %v", err)
	}

	provider, closeStores, err := services.NewProviderFromConfig(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("Failed to create services: %v", err)
	}
	defer closeStores()

	handler := discord.NewHandler(&discord.HandlerConfig{
		QuizService: provider.QuizService,
	})
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		logrus.Errorf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logrus.Errorf("Failed to close Discord connection: %v", err)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		logrus.Errorf("Failed to register commands: %v", err)
		return
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")
}
