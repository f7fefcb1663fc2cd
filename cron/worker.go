package cron

import (
	"context"
	"log"
	"time"

	"taly/config"
	sessionRepo "taly/database/repository/session"

	"github.com/hibiken/asynq"
)

const TypeSessionSweep = "session:sweep"

// InitSessionSweeper runs the async worker that purges expired sessions.
func InitSessionSweeper(sessions sessionRepo.SessionRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionSweep, handleSessionSweep(sessions))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeSessionSweep, nil)); err != nil {
		log.Printf("[SessionSweeper] failed to register periodic sweep: %v", err)
		return
	}

	// Start async worker with retry logic
	go func() {
		log.Println("[SessionSweeper] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SessionSweeper] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[SessionSweeper] max retry attempts reached, giving up")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[SessionSweeper] scheduler stopped: %v", err)
		}
	}()
}

func handleSessionSweep(sessions sessionRepo.SessionRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		deleted, err := sessions.DeleteExpired(ctx)
		if err != nil {
			log.Printf("[SessionSweeper] sweep failed: %v", err)
			return err
		}
		if deleted > 0 {
			log.Printf("[SessionSweeper] purged %d expired sessions", deleted)
		}
		return nil
	}
}
