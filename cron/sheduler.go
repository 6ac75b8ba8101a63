package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"storefront.GO/config"
)

// StartCron schedules every registered job and starts the scheduler. A
// CRON_<NAME> variable overrides a job's registered schedule.
func StartCron() *cron.Cron {
	c := cron.New()
	for name, j := range Jobs() {
		run := j.Run
		sched := ScheduleFor(name, j)
		_, err := c.AddFunc(sched, func() { run() })
		if err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
		log.Printf("cron: %s scheduled %s", name, sched)
	}
	c.Start()
	return c
}

// ScheduleFor returns the effective schedule of job name.
func ScheduleFor(name string, j Job) string {
	if s := config.CronSchedule(name); s != "" {
		return s
	}
	return j.Schedule
}
