package repository

import (
	"context"

	"github.com/you-humble/parts-inventory/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, parts []*model.Part) error
}

// PartsBootstrap inserts the sample parts used for local runs and tests.
func PartsBootstrap(ctx context.Context, c BatchCreator) error {
	parts := []*model.Part{
		{
			Name:    "Screw",
			Number:  100001,
			InStock: 20,
			OnOrder: 10,
		},
		{
			Name:    "Nail",
			Number:  100002,
			InStock: 150,
			OnOrder: 0,
		},
		{
			Name:    "Bolt",
			Number:  100003,
			InStock: 35,
			OnOrder: 40,
		},
	}

	return c.CreateBatch(ctx, parts)
}
