package ports

import "github.com/aalvaropc/gendata/internal/domain"

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(path string, report domain.RunReport) error
}
