package enum

// AccountStatus represents the status of a profile's account
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

func (s AccountStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known account statuses
func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusInactive
}
