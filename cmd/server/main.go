package main

import (
	"context"
	"flag"

	"github.com/scriptor-ai/scriptor/config"
	"github.com/scriptor-ai/scriptor/pkg/otel"
	"github.com/scriptor-ai/scriptor/server"

	"github.com/joho/godotenv"
)

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")
	addressFlag := flag.String("address", "", "server address")

	flag.Parse()

	godotenv.Load()

	ctx := context.Background()

	if err := otel.Setup(ctx, "scriptor", "0.1.0"); err != nil {
		panic(err)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		panic(err)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		panic(err)
	}

	if err := s.ListenAndServe(); err != nil {
		panic(err)
	}
}
