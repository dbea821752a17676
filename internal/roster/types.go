package roster

import "strings"

// Status is the practising status recorded on the roll.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Record describes one advocate on the roll in transport-friendly form.
type Record struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	FirmName       string `json:"firm_name" yaml:"firm_name"`
	Address        string `json:"address,omitempty" yaml:"address,omitempty"`
	Email          string `json:"email" yaml:"email"`
	Phone          string `json:"phone" yaml:"phone"`
	PlotNo         string `json:"plot_no,omitempty" yaml:"plot_no,omitempty"`
	EnrollmentDate string `json:"enrollment_date" yaml:"enrollment_date"`
	RenewalDate    string `json:"renewal_date" yaml:"renewal_date"`
	CertificateNo  string `json:"certificate_no" yaml:"certificate_no"`
	Status         Status `json:"status" yaml:"status"`
}

// StatusFilter selects records by status. The zero value selects all records.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterActive
	FilterInactive
)

// ParseStatusFilter accepts all, active and inactive in any case.
// An empty value means all.
func ParseStatusFilter(value string) (StatusFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return FilterAll, true
	case "active":
		return FilterActive, true
	case "inactive":
		return FilterInactive, true
	}
	return FilterAll, false
}

// Matches reports whether a record with the given status passes the filter.
func (f StatusFilter) Matches(status Status) bool {
	switch f {
	case FilterActive:
		return status == StatusActive
	case FilterInactive:
		return status == StatusInactive
	default:
		return true
	}
}

// Next cycles All -> Active -> Inactive -> All.
func (f StatusFilter) Next() StatusFilter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterInactive
	default:
		return FilterAll
	}
}

// String returns the selector label shown to the user.
func (f StatusFilter) String() string {
	switch f {
	case FilterActive:
		return string(StatusActive)
	case FilterInactive:
		return string(StatusInactive)
	default:
		return "All"
	}
}
