package valueobjects

import "fmt"

type TechnicianStatus string

const (
	StatusAvailable TechnicianStatus = "available"
	StatusBusy      TechnicianStatus = "busy"
	StatusOffline   TechnicianStatus = "offline"
)

var validTechnicianStatuses = map[TechnicianStatus]bool{
	StatusAvailable: true,
	StatusBusy:      true,
	StatusOffline:   true,
}

func (ts TechnicianStatus) String() string {
	return string(ts)
}

func (ts TechnicianStatus) IsValid() bool {
	return validTechnicianStatuses[ts]
}

func (ts TechnicianStatus) IsAvailable() bool {
	return ts == StatusAvailable
}

func NewTechnicianStatus(s string) (TechnicianStatus, error) {
	ts := TechnicianStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid technician status: %s", s)
	}
	return ts, nil
}
