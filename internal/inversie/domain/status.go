package domain

// Status is the approval state shared by decisions and money requests.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusDenied   Status = "DENIED"
)

// Terminal reports whether no further transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusDenied
}

// Outcome is a guardian verdict on a pending item.
type Outcome struct {
	Status  Status // APPROVED or DENIED
	Message *string
}
