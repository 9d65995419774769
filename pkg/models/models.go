package models

import "time"

// Priority is the severity of a failure. Higher values sort first in the
// priority queue.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Machine is a piece of tracked equipment. Names are unique across the fleet.
type Machine struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`
}

// DurationBreakdown is an average downtime normalized to whole units.
type DurationBreakdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// MachineDetails is the statistics payload for one machine: its full
// failure history and the average downtime per failure.
type MachineDetails struct {
	MachineName     string            `json:"machineName"`
	Failures        []Failure         `json:"failures"`
	AverageDuration DurationBreakdown `json:"averageDuration"`
}

// Failure is a malfunction event reported against exactly one machine.
// EndTime is non-nil exactly when IsResolved is true.
type Failure struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:50;not null" json:"name"`
	MachineID   uint       `gorm:"index;not null" json:"machineId"`
	Machine     *Machine   `gorm:"foreignKey:MachineID" json:"machine,omitempty"`
	Priority    Priority   `json:"priority"`
	StartTime   time.Time  `gorm:"not null" json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Description string     `gorm:"type:text" json:"description"`
	IsResolved  bool       `gorm:"default:false" json:"isResolved"`
}
