package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"

	"github.com/you-humble/parts-inventory/internal/model"
)

type yamlFixturePart struct {
	ID      string `yaml:"_id"`
	Name    string `yaml:"partName"`
	Number  int64  `yaml:"partNumber"`
	InStock int64  `yaml:"inStock"`
	OnOrder int64  `yaml:"onOrder"`
}

// LoadFixtures reads parts from a .json (MongoDB Extended JSON array) or
// .yaml/.yml file and inserts them through c. Fields outside the part model
// are ignored. Every call reads the file again.
func LoadFixtures(ctx context.Context, c BatchCreator, path string) ([]*model.Part, error) {
	const op = "repository.LoadFixtures"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var parts []*model.Part
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		parts, err = decodeJSONFixtures(data)
	case ".yaml", ".yml":
		parts, err = decodeYAMLFixtures(data)
	default:
		err = fmt.Errorf("unsupported fixture format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, path, err)
	}

	if err := c.CreateBatch(ctx, parts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return parts, nil
}

func decodeJSONFixtures(data []byte) ([]*model.Part, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	out := make([]*model.Part, 0, len(raws))
	for i, raw := range raws {
		var ent PartEntity
		if err := bson.UnmarshalExtJSON(raw, false, &ent); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}

		p := EntityToModel(&ent)
		if ent.ID.IsZero() {
			p.ID = ""
		}
		out = append(out, p)
	}

	return out, nil
}

func decodeYAMLFixtures(data []byte) ([]*model.Part, error) {
	var docs []yamlFixturePart
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, err
	}

	out := make([]*model.Part, 0, len(docs))
	for _, d := range docs {
		out = append(out, &model.Part{
			ID:      d.ID,
			Name:    d.Name,
			Number:  d.Number,
			InStock: d.InStock,
			OnOrder: d.OnOrder,
		})
	}

	return out, nil
}
