package enum

// StallStatus represents the operational status of a stall
type StallStatus string

const (
	StallStatusActive      StallStatus = "active"
	StallStatusInactive    StallStatus = "inactive"
	StallStatusMaintenance StallStatus = "under maintenance"
)

func (s StallStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known stall statuses
func (s StallStatus) Valid() bool {
	switch s {
	case StallStatusActive, StallStatusInactive, StallStatusMaintenance:
		return true
	}
	return false
}
