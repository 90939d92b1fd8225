package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	bannerJob "publishing-backend/internal/domains/banner/job"
	homepageJob "publishing-backend/internal/domains/homepage/job"
	"publishing-backend/internal/shared"
	"publishing-backend/pkg/container"
)

// asynqServer wraps asynq.Server for shutdown handling.
type asynqServer struct {
	*asynq.Server
}

func setupAsynqServer(c *container.Container) *asynqServer {
	mux := asynq.NewServeMux()

	mux.Handle(shared.TypeDeactivateExpiredBanners,
		bannerJob.NewDeactivateExpiredBannersHandler(c.BannerRepo))
	mux.Handle(shared.TypeDeactivateExpiredHomepage,
		homepageJob.NewDeactivateExpiredContentHandler(c.HomepageRepo))

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Queues: map[string]int{
				shared.QueueDefault: 10,
				shared.QueueLow:     5,
			},
			Concurrency: 10,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq] Task failed - Type: %s, Error: %v", task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown stops the server after in-flight tasks finish.
func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down...")
	s.Server.Shutdown()
	log.Println("[Worker] Stopped")
}
