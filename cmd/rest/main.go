package main

import (
	"context"
	"log"

	"jf-travels-be/internal/bootstrap"
	"jf-travels-be/internal/config"
	"jf-travels-be/internal/server"
	"jf-travels-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer (disabled unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 4. Start the identity subscription for the session lifecycle
	if err := container.SessionService.Start(); err != nil {
		log.Panicf("Unable to subscribe to identity provider: %v", err)
	}
	defer container.SessionService.Stop()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
