// Package partsv1 holds the JSON wire types of the parts HTTP API.
package partsv1

import "time"

// Part is a stored part as returned by the API. ID is the canonical
// 24 hex char string form of the store id.
type Part struct {
	ID         string `json:"_id"`
	PartName   string `json:"partName"`
	PartNumber int64  `json:"partNumber"`
	InStock    int64  `json:"inStock"`
	OnOrder    int64  `json:"onOrder"`
}

// CreatePartRequest uses pointers so a missing field can be told apart
// from a zero value.
type CreatePartRequest struct {
	PartName   *string `json:"partName" validate:"required"`
	PartNumber *int64  `json:"partNumber" validate:"required"`
	InStock    *int64  `json:"inStock" validate:"required,gte=0"`
	OnOrder    *int64  `json:"onOrder" validate:"required,gte=0"`
}

// UpdatePartRequest is a merge patch: absent fields are left unchanged.
type UpdatePartRequest struct {
	PartName   *string `json:"partName,omitempty"`
	PartNumber *int64  `json:"partNumber,omitempty"`
	InStock    *int64  `json:"inStock,omitempty" validate:"omitempty,gte=0"`
	OnOrder    *int64  `json:"onOrder,omitempty" validate:"omitempty,gte=0"`
}

type CreatePartResponse struct {
	ID string `json:"_id"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	StatusSuccess = "success"
	StatusDeleted = "deleted"

	ErrPartNotFound = "Part not found"
	ErrInternal     = "internal error"
)

// PartEventRecord is the Kafka payload published on part changes.
type PartEventRecord struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	PartID     string    `json:"partId"`
	OccurredAt time.Time `json:"occurredAt"`
}
