package config

import "strings"

// CronSchedules maps built-in job names to their default schedules. A
// CRON_<NAME> variable overrides the entry.
var CronSchedules = map[string]string{
	"metawarm":   "@every 30m",
	"cachepurge": "@every 5m",
}

// CronSchedule returns the schedule for a built-in job.
func CronSchedule(name string) string {
	return GetEnv("CRON_"+strings.ToUpper(name), CronSchedules[name])
}
