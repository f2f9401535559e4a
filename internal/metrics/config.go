package metrics

import "time"

// Config holds configuration for GCP metrics reporting
type Config struct {
	Enabled        bool          // Whether metrics reporting is enabled
	ProjectID      string        // GCP project ID (empty = auto-detect)
	ReportInterval time.Duration // How often to report metrics to GCP
}

// DefaultReportInterval is used when no interval is configured
const DefaultReportInterval = 60 * time.Second
