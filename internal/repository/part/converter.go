package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/parts-inventory/internal/model"
)

// ParseID converts the canonical 24 hex char form into an ObjectID.
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w %q", model.ErrInvalidPartID, id)
	}

	return oid, nil
}

func FormatID(oid bson.ObjectID) string {
	return oid.Hex()
}

func EntityToModel(e *PartEntity) *model.Part {
	if e == nil {
		return nil
	}

	return &model.Part{
		ID:      FormatID(e.ID),
		Name:    e.Name,
		Number:  e.Number,
		InStock: e.InStock,
		OnOrder: e.OnOrder,
	}
}

func EntityFromModel(p *model.Part) (*PartEntity, error) {
	if p == nil {
		return nil, nil
	}

	out := &PartEntity{
		Name:    p.Name,
		Number:  p.Number,
		InStock: p.InStock,
		OnOrder: p.OnOrder,
	}

	if p.ID != "" {
		oid, err := ParseID(p.ID)
		if err != nil {
			return nil, err
		}
		out.ID = oid
	}

	return out, nil
}

func BuildMongoFilter(f model.PartsFilter) bson.M {
	q := bson.M{}

	if len(f.Names) > 0 {
		q["partName"] = bson.M{"$in": f.Names}
	}

	return q
}

// BuildMongoUpdate turns a patch into a $set document holding only the
// fields present in it.
func BuildMongoUpdate(p model.PartPatch) bson.M {
	set := bson.D{}

	if p.Name != nil {
		set = append(set, bson.E{Key: "partName", Value: *p.Name})
	}
	if p.Number != nil {
		set = append(set, bson.E{Key: "partNumber", Value: *p.Number})
	}
	if p.InStock != nil {
		set = append(set, bson.E{Key: "inStock", Value: *p.InStock})
	}
	if p.OnOrder != nil {
		set = append(set, bson.E{Key: "onOrder", Value: *p.OnOrder})
	}

	return bson.M{"$set": set}
}
