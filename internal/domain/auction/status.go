package auction

type Status string

const (
	StatusReady    Status = "READY"
	StatusRunning  Status = "RUNNING"
	StatusDeadline Status = "DEADLINE"
	StatusEnded    Status = "ENDED"
	StatusCanceled Status = "CANCELED"
	StatusBlocked  Status = "BLOCKED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReady, StatusRunning, StatusDeadline, StatusEnded, StatusCanceled, StatusBlocked:
		return true
	default:
		return false
	}
}

func (s Status) AcceptsBids() bool {
	return s == StatusRunning
}

// IsLive covers the states in which a leader still holds locked funds.
func (s Status) IsLive() bool {
	return s == StatusRunning || s == StatusDeadline
}

func (s Status) IsCancellable() bool {
	return s == StatusReady || s == StatusRunning
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
