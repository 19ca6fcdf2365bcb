package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type PartEntity struct {
	ID      bson.ObjectID `bson:"_id,omitempty"`
	Name    string        `bson:"partName"`
	Number  int64         `bson:"partNumber"`
	InStock int64         `bson:"inStock"`
	OnOrder int64         `bson:"onOrder"`
}
