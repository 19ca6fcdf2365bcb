package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewPartRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, part *model.Part) (string, error) {
	const op = "repository.Create"

	ent, err := EntityFromModel(part)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if ent == nil {
		return "", fmt.Errorf("%s: nil part", op)
	}
	if ent.ID.IsZero() {
		ent.ID = bson.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%s: %w: %w", op, model.ErrPartAlreadyExists, err)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return FormatID(ent.ID), nil
}

func (r *repository) PartByID(ctx context.Context, id string) (*model.Part, error) {
	const op = "repository.PartByID"

	oid, err := ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ent PartEntity
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error) {
	const op = "repository.List"

	cur, err := r.coll.Find(ctx, BuildMongoFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Error(ctx, op+": failed to close cursor", logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.Part, 0)
	for cur.Next(ctx) {
		var ent PartEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) Update(ctx context.Context, id string, patch model.PartPatch) error {
	const op = "repository.Update"

	oid, err := ParseID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, BuildMongoUpdate(patch))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.Delete"

	oid, err := ParseID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) CreateBatch(ctx context.Context, parts []*model.Part) error {
	const op = "repository.CreateBatch"

	docs := make([]any, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}

		ent, err := EntityFromModel(p)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if ent.ID.IsZero() {
			ent.ID = bson.NewObjectID()
		}
		p.ID = FormatID(ent.ID)

		docs = append(docs, ent)
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w: %w", op, model.ErrPartAlreadyExists, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// EnsureIndexes creates the secondary indexes used by list filters.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "partName", Value: 1}}},
		{Keys: bson.D{{Key: "partNumber", Value: 1}}},
	}, options.CreateIndexes())

	return err
}
