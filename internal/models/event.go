package models

import "time"

// EventRow is one row of the measurement event reference table
type EventRow struct {
	Code          string `json:"code"` // A1..A6, B1, B2
	Description   string `json:"description"`
	Trigger       string `json:"trigger"`        // Entering condition
	ConditionType string `json:"condition_type"` // Absolute or relative
	Action        string `json:"action"`         // Typical network reaction
}

// EventTableSource tells where the stored event table came from
type EventTableSource string

const (
	EventSourceRemote   EventTableSource = "remote"
	EventSourceFile     EventTableSource = "file"
	EventSourceFallback EventTableSource = "fallback"
)

// EventTableMeta describes the currently stored event table
type EventTableMeta struct {
	Source   EventTableSource `json:"source"`
	Location string           `json:"location,omitempty"`
	RowCount int              `json:"row_count"`
	LoadedAt time.Time        `json:"loaded_at"`
}

// EventTable is the response for the event table endpoint
type EventTable struct {
	Meta EventTableMeta `json:"meta"`
	Rows []EventRow     `json:"rows"`
}
