package model

import (
	"time"

	"github.com/google/uuid"
)

type PartEventType string

const (
	PartCreated PartEventType = "part.created"
	PartUpdated PartEventType = "part.updated"
	PartDeleted PartEventType = "part.deleted"
)

type PartEvent struct {
	EventID    uuid.UUID
	Type       PartEventType
	PartID     string
	OccurredAt time.Time
}
