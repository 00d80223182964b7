package jobs

import (
	"log"
	"time"

	"github.com/ShubhamJagtap-29/gamersden/internal/team"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// StartScheduler runs the background maintenance jobs. Currently a single
// hourly sweep that rejects team applications past their expiry.
func StartScheduler(db *gorm.DB) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[Scheduler] failed to start: %v", err)
		return
	}
	sched.Start()

	teamRepo := team.NewRepository(db)

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			count, err := teamRepo.RejectExpiredApplications(time.Now())
			if err != nil {
				log.Printf("[Scheduler] expired application sweep failed: %v", err)
				return
			}
			if count > 0 {
				log.Printf("[Scheduler] rejected %d expired team applications", count)
			}
		}),
	)
	if err != nil {
		log.Printf("[Scheduler] failed to register sweep job: %v", err)
	}
}
