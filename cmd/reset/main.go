package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/bootstrap"
	"github.com/osse101/SpinSurvive_Go/internal/config"
	"github.com/osse101/SpinSurvive_Go/internal/wallet"
)

// reset wipes the saved game from the configured store backend, the same
// operation as POST /api/v1/admin/reset but without a running server.
func main() {
	force := flag.Bool("force", false, "skip the confirmation prompt")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !*force {
		fmt.Printf("This deletes the saved game in the %s store. Continue? [y/N] ", cfg.StoreBackend)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			log.Println("Aborted.")
			os.Exit(0)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer s.Close()

	gate, err := bootstrap.NewDailyGate(cfg)
	if err != nil {
		log.Fatalf("Invalid time zone: %v", err)
	}

	if err := wallet.NewRepository(s, gate).Reset(ctx); err != nil {
		log.Fatalf("Failed to reset saved game: %v", err)
	}

	log.Println("✅ Saved game reset. The next session starts with the new-player defaults.")
}
