// Package jobs provides scheduled background tasks for the dashboard.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// schedules.
//
// # Available Jobs
//
// SessionSweepJob runs every minute and forgets the dashboards of sessions
// idle for longer than SESSION_IDLE_TIMEOUT. It is always on.
//
// DemoResetJob forgets every session's dashboard on a schedule, so a shared
// demo returns to its seed data. It only runs when DEMO_RESET_SCHEDULE is set.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(evictHandler, 24*time.Hour, resetHandler, "0 0 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
