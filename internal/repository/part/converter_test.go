package repository

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/parts-inventory/internal/model"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	oid := bson.NewObjectID()

	got, err := ParseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)
	assert.Equal(t, oid.Hex(), FormatID(got))

	for _, bad := range []string{"", " " + oid.Hex(), oid.Hex() + "\n", "xyz", "63d80df53cec861f655cdf1", "63d80df53cec861f655cdf13aa", "zzd80df53cec861f655cdf13"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, model.ErrInvalidPartID, bad)
	}
}

func TestEntityRoundTrip(t *testing.T) {
	t.Parallel()

	p := &model.Part{
		ID:      "63d80df53cec861f655cdf13",
		Name:    "Screw",
		Number:  100007,
		InStock: 10,
		OnOrder: 5,
	}

	ent, err := EntityFromModel(p)
	require.NoError(t, err)
	assert.Equal(t, "63d80df53cec861f655cdf13", ent.ID.Hex())
	assert.Equal(t, p, EntityToModel(ent))

	ent, err = EntityFromModel(&model.Part{Name: "NoID"})
	require.NoError(t, err)
	assert.True(t, ent.ID.IsZero())

	_, err = EntityFromModel(&model.Part{ID: "nope"})
	assert.ErrorIs(t, err, model.ErrInvalidPartID)

	ent, err = EntityFromModel(nil)
	assert.NoError(t, err)
	assert.Nil(t, ent)
	assert.Nil(t, EntityToModel(nil))
}

func TestBuildMongoUpdateSetsOnlyPresentFields(t *testing.T) {
	t.Parallel()

	upd := BuildMongoUpdate(model.PartPatch{InStock: lo.ToPtr(int64(5))})
	assert.Equal(t, bson.M{"$set": bson.D{{Key: "inStock", Value: int64(5)}}}, upd)

	upd = BuildMongoUpdate(model.PartPatch{
		Name:    lo.ToPtr("Bolt"),
		Number:  lo.ToPtr(int64(1)),
		InStock: lo.ToPtr(int64(0)),
		OnOrder: lo.ToPtr(int64(2)),
	})
	assert.Equal(t, bson.M{"$set": bson.D{
		{Key: "partName", Value: "Bolt"},
		{Key: "partNumber", Value: int64(1)},
		{Key: "inStock", Value: int64(0)},
		{Key: "onOrder", Value: int64(2)},
	}}, upd)
}

func TestBuildMongoFilter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.M{}, BuildMongoFilter(model.PartsFilter{}))
	assert.Equal(t,
		bson.M{"partName": bson.M{"$in": []string{"Screw", "Nail"}}},
		BuildMongoFilter(model.PartsFilter{Names: []string{"Screw", "Nail"}}),
	)
}
