package main

import (
	"context"
	"log"

	"drawtogether-backend/internal/config"
	"drawtogether-backend/internal/gateway"
	"drawtogether-backend/internal/room"
	"drawtogether-backend/internal/server"
)

func main() {
	cfg := config.Load()

	registry := room.NewRegistry(cfg.Room.CodeLength)
	gw := gateway.New(cfg, registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go gw.Run(ctx)

	srv := server.New(cfg, gw)
	srv.SetupMiddleware()
	srv.SetupRoutes()

	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
