package model

import (
	"encoding/hex"
	"fmt"
)

const partIDLen = 24

type Part struct {
	// Store-generated identifier in its canonical string form.
	ID string
	// Human-readable part name, not unique.
	Name string
	// Client-assigned part number, not unique.
	Number int64
	// Units on hand.
	InStock int64
	// Units pending delivery.
	OnOrder int64
}

// PartPatch is a merge update: nil fields are left untouched.
type PartPatch struct {
	Name    *string
	Number  *int64
	InStock *int64
	OnOrder *int64
}

func (p PartPatch) Empty() bool {
	return p.Name == nil &&
		p.Number == nil &&
		p.InStock == nil &&
		p.OnOrder == nil
}

type PartsFilter struct {
	Names []string
}

func (f PartsFilter) Empty() bool {
	return len(f.Names) == 0
}

// LegacyScrew is the record inserted by the legacy create endpoint, which
// ignores the request body.
func LegacyScrew() *Part {
	return &Part{
		Name:    "Screw",
		Number:  100007,
		InStock: 10,
		OnOrder: 5,
	}
}

// ValidatePartID accepts only the canonical form of a part id: exactly 24
// hex digits, no surrounding whitespace.
func ValidatePartID(id string) error {
	if len(id) != partIDLen {
		return fmt.Errorf("%w %q", ErrInvalidPartID, id)
	}
	if _, err := hex.DecodeString(id); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidPartID, id)
	}

	return nil
}
