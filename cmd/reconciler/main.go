// The reconciler daemon runs the offer lifecycle engine against a remote
// lacarta backend: it keeps a working set of offers, sweeps it once a minute,
// and deactivates any offer whose validity window closed while it was still
// marked active.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/lacarta/lacarta-backend/internal/lifecycle"
	"github.com/lacarta/lacarta-backend/pkg/offerclient"
)

func main() {
	configPath := flag.String("config", "reconciler.yaml", "path to the YAML config file")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	interval, err := cfg.interval()
	if err != nil {
		log.Fatalf("reconciler.interval: %v", err)
	}
	window, err := cfg.window()
	if err != nil {
		log.Fatalf("search.window: %v", err)
	}

	client := offerclient.New(cfg.API.BaseURL, cfg.API.Token)
	engine := lifecycle.NewEngine(client, lifecycle.EngineConfig{
		Interval: interval,
		Window:   window,
		OnError:  func(err error) { log.Printf("refresh: %v", err) },
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := engine.Start(ctx); err != nil {
		log.Printf("initial refresh: %v (engine running, will recover on next refresh)", err)
	} else {
		log.Printf("watching %d offers at %s", engine.Store.Len(), cfg.API.BaseURL)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	log.Println("shutting down")
	engine.Stop()
}
