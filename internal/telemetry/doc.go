// Package telemetry observes an external system monitor.
//
// The shell does not collect CPU, GPU or memory figures itself. A separate
// monitor process serves its latest reading as JSON on GET /api/stats:
//
//	{"cpu": 17, "gpu": 42, "ram": {"totalGiB": 15.5, "usedGiB": 6.1, "percent": 39}}
//
// gpu is null or missing on machines without a readable busy counter.
//
// Client fetches one reading. Store holds the latest successful Sample
// alongside the most recent error, so the UI keeps showing the last good
// figures while the monitor is briefly unreachable and switches to an
// offline marker once failures repeat. The app package drives the polling
// loop; this package has no goroutines of its own.
package telemetry
