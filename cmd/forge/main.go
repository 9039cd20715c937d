package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/character-forge/internal/config"
	"github.com/KirkDiggler/character-forge/internal/handlers/cli"
	"github.com/KirkDiggler/character-forge/internal/logging"
	"github.com/KirkDiggler/character-forge/internal/services"
)

func main() {
	_ = godotenv.Load()

	demo := flag.Bool("demo", false, "Answer the quiz at random")
	seedFlag := flag.Int64("seed", 0, "Seed for a repeatable character")
	flag.Parse()

	var seed *int64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed = seedFlag
		}
	})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	// The terminal is for the quiz; only warnings reach it.
	if err := logging.Setup("warn", cfg.Log.Format); err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	ctx := context.Background()
	provider, closeStores, err := services.NewProviderFromConfig(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to create services: %v", err)
	}
	defer closeStores()

	runner := cli.NewRunner(&cli.RunnerConfig{
		QuizService: provider.QuizService,
		In:          os.Stdin,
		Out:         os.Stdout,
	})

	if *demo {
		_, err = runner.Demo(ctx, seed)
	} else {
		_, err = runner.Interactive(ctx, seed)
	}
	if err != nil {
		closeStores()
		logrus.Fatalf("Forge failed: %v", err)
	}
}
