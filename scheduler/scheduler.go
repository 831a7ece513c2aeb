package scheduler

import (
	"log"
	"time"

	"calmquest/services"

	"github.com/go-co-op/gocron"
)

// Scheduler runs the app's background jobs.
type Scheduler struct {
	scheduler *gocron.Scheduler
}

// New creates a new scheduler instance
func New() *Scheduler {
	return &Scheduler{scheduler: gocron.NewScheduler(time.UTC)}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// End-of-day check-in summary, just before the UTC day rolls over
	s.scheduler.Every(1).Day().At("23:55").Do(s.logDailySummary)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) logDailySummary() {
	today := time.Now().UTC().Format("2006-01-02")
	count, err := services.CountCheckinsOnDate(today)
	if err != nil {
		log.Printf("Daily summary failed for %s: %v", today, err)
		return
	}
	log.Printf("Daily summary %s: %d check-ins recorded", today, count)
}
