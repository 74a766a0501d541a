package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"legalaid/config"
	notificationRepo "legalaid/database/repository/notification"
	"legalaid/models"
	"legalaid/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// NewReminderClient returns the asynq client used to enqueue reminder tasks.
func NewReminderClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
}

// InitReminderWorker runs the async worker in background. Fired reminders
// land in the recipient's notification feed, where the polling panel picks
// them up.
func InitReminderWorker(repo notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(repo))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(repo notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		status := models.AppointmentConfirmed
		n := &models.Notification{
			ID:                uuid.New().String(),
			UserID:            p.UserID,
			Type:              models.NotificationAppointment,
			Message:           p.Message,
			ReferenceID:       p.AppointmentID,
			AppointmentStatus: &status,
			CreatedAt:         time.Now(),
		}
		if err := repo.Create(ctx, n); err != nil {
			log.Printf("[ReminderHandler] failed to store reminder notification: %v", err)
			return err
		}
		return nil
	}
}
