package lotevent

import (
	"time"

	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
)

// LotEvent is one history row. Payload carries the record's JSON payload
// verbatim into a jsonb column.
type LotEvent struct {
	ID         string    `json:"id"`
	LotID      int64     `json:"lotID"`
	EventType  string    `json:"eventType"`
	ModuleRef  string    `json:"moduleRef"`
	Payload    []byte    `json:"payload"`
	OccurredAt time.Time `json:"occurredAt"`
}

// FromRecord fills the row from a published record.
func (e *LotEvent) FromRecord(record eventv1.LotEvent) {
	e.ID = record.ID
	e.LotID = int64(record.LotID)
	e.EventType = string(record.Type)
	e.ModuleRef = record.ModuleRef
	e.Payload = record.Payload
	e.OccurredAt = record.OccurredAt
}

// ToRecord converts the row back to its published form.
func (e *LotEvent) ToRecord() eventv1.LotEvent {
	return eventv1.LotEvent{
		ID:         e.ID,
		LotID:      uint64(e.LotID),
		Type:       eventv1.EventType(e.EventType),
		ModuleRef:  e.ModuleRef,
		Payload:    e.Payload,
		OccurredAt: e.OccurredAt,
	}
}

// Filter represents the filter criteria for event history queries. A zero
// LotID matches nothing lot-specific; rewards records are found by type.
type Filter struct {
	LotID         uint64     `json:"lotID"`
	EventType     string     `json:"eventType"`
	ModuleRef     string     `json:"moduleRef"`
	From          *time.Time `json:"from"`
	To            *time.Time `json:"to"`
	Limit         int        `json:"limit"`
	Offset        int        `json:"offset"`
	SortDirection string     `json:"sortDirection"`
}
