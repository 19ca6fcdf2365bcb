package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/parts-inventory/internal/model"
	repository "github.com/you-humble/parts-inventory/internal/repository/part"
)

// Repository keeps parts in process memory. Ids use the same ObjectID
// encoding as the MongoDB repository.
type Repository struct {
	mu    sync.RWMutex
	order []bson.ObjectID
	data  map[bson.ObjectID]repository.PartEntity
}

func NewPartRepository() *Repository {
	return &Repository{data: make(map[bson.ObjectID]repository.PartEntity)}
}

func (r *Repository) Create(_ context.Context, part *model.Part) (string, error) {
	ent, err := repository.EntityFromModel(part)
	if err != nil {
		return "", err
	}
	if ent == nil {
		return "", model.ErrValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[ent.ID]; exists && !ent.ID.IsZero() {
		return "", fmt.Errorf("%w: %s", model.ErrPartAlreadyExists, repository.FormatID(ent.ID))
	}
	r.insert(ent)

	return repository.FormatID(ent.ID), nil
}

func (r *Repository) CreateBatch(_ context.Context, parts []*model.Part) error {
	ents := make([]*repository.PartEntity, len(parts))
	for i, p := range parts {
		if p == nil {
			continue
		}
		ent, err := repository.EntityFromModel(p)
		if err != nil {
			return err
		}
		ents[i] = ent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// the batch is rejected as a whole, before anything is stored
	seen := make(map[bson.ObjectID]struct{}, len(ents))
	for _, ent := range ents {
		if ent == nil || ent.ID.IsZero() {
			continue
		}
		_, stored := r.data[ent.ID]
		_, repeated := seen[ent.ID]
		if stored || repeated {
			return fmt.Errorf("%w: %s", model.ErrPartAlreadyExists, repository.FormatID(ent.ID))
		}
		seen[ent.ID] = struct{}{}
	}

	for i, ent := range ents {
		if ent == nil {
			continue
		}
		r.insert(ent)
		parts[i].ID = repository.FormatID(ent.ID)
	}

	return nil
}

func (r *Repository) PartByID(_ context.Context, id string) (*model.Part, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ent, ok := r.data[oid]
	if !ok {
		return nil, model.ErrPartNotFound
	}

	return repository.EntityToModel(&ent), nil
}

func (r *Repository) List(_ context.Context, filter model.PartsFilter) ([]*model.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Part, 0, len(r.order))
	for _, oid := range r.order {
		ent := r.data[oid]
		if !filter.Empty() && !slices.Contains(filter.Names, ent.Name) {
			continue
		}
		out = append(out, repository.EntityToModel(&ent))
	}

	return out, nil
}

func (r *Repository) Update(_ context.Context, id string, patch model.PartPatch) error {
	oid, err := repository.ParseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ent, ok := r.data[oid]
	if !ok {
		return model.ErrPartNotFound
	}

	if patch.Name != nil {
		ent.Name = *patch.Name
	}
	if patch.Number != nil {
		ent.Number = *patch.Number
	}
	if patch.InStock != nil {
		ent.InStock = *patch.InStock
	}
	if patch.OnOrder != nil {
		ent.OnOrder = *patch.OnOrder
	}
	r.data[oid] = ent

	return nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	oid, err := repository.ParseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[oid]; !ok {
		return model.ErrPartNotFound
	}

	delete(r.data, oid)
	r.order = slices.DeleteFunc(r.order, func(o bson.ObjectID) bool { return o == oid })

	return nil
}

// Len reports the number of stored parts.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.data)
}

// insert must be called with mu held and ent.ID, when set, not yet stored.
func (r *Repository) insert(ent *repository.PartEntity) {
	if ent.ID.IsZero() {
		ent.ID = bson.NewObjectID()
	}
	r.order = append(r.order, ent.ID)
	r.data[ent.ID] = *ent
}
