// Package background wraps the gocron scheduler for the periodic jobs the
// server runs alongside request handling.
package background

import (
	"context"
	"log"
	"time"

	"supplytrack/internal/jobs"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// JobScheduler manages the background jobs of the server process.
type JobScheduler struct {
	scheduler gocron.Scheduler
	alertSvc  *jobs.InventoryAlertService
	jobIDs    map[string]uuid.UUID
}

// NewJobScheduler creates a new job scheduler
func NewJobScheduler(alertSvc *jobs.InventoryAlertService) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &JobScheduler{
		scheduler: scheduler,
		alertSvc:  alertSvc,
		jobIDs:    make(map[string]uuid.UUID),
	}, nil
}

// RegisterLowStockCheck schedules the low-stock scan at the given interval.
func (js *JobScheduler) RegisterLowStockCheck(interval time.Duration, threshold int) error {
	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := js.alertSvc.ScheduledLowStockCheck(context.Background(), threshold); err != nil {
				log.Printf("Low stock check job failed: %v", err)
			}
		}),
	)
	if err != nil {
		return err
	}

	js.jobIDs["low_stock_check"] = job.ID()
	log.Printf("Registered low stock check job %s (every %s, threshold %d)", job.ID(), interval, threshold)
	return nil
}

// Start begins running registered jobs.
func (js *JobScheduler) Start() {
	js.scheduler.Start()
}

// Stop shuts the scheduler down, waiting for running jobs to finish.
func (js *JobScheduler) Stop() {
	if err := js.scheduler.Shutdown(); err != nil {
		log.Printf("Failed to shut down job scheduler: %v", err)
	}
}
