package config

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds statically configured jobs only. Packages that ship their
// own jobs self-register through cron.Register from init(), which keeps
// config free of imports on the job packages; the scheduler merges both
// tables at startup.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
