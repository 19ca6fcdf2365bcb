package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/parts-inventory/internal/model"
	partsv1 "github.com/you-humble/parts-inventory/pkg/api/parts/v1"
)

func PartToAPI(p *model.Part) partsv1.Part {
	return partsv1.Part{
		ID:         p.ID,
		PartName:   p.Name,
		PartNumber: p.Number,
		InStock:    p.InStock,
		OnOrder:    p.OnOrder,
	}
}

// PartsToAPI never returns nil so an empty list encodes as [].
func PartsToAPI(parts []*model.Part) []partsv1.Part {
	return lo.Map(parts, func(p *model.Part, _ int) partsv1.Part {
		return PartToAPI(p)
	})
}

func CreatePartRequestToModel(req *partsv1.CreatePartRequest) *model.Part {
	return &model.Part{
		Name:    lo.FromPtr(req.PartName),
		Number:  lo.FromPtr(req.PartNumber),
		InStock: lo.FromPtr(req.InStock),
		OnOrder: lo.FromPtr(req.OnOrder),
	}
}

func UpdatePartRequestToPatch(req *partsv1.UpdatePartRequest) model.PartPatch {
	return model.PartPatch{
		Name:    req.PartName,
		Number:  req.PartNumber,
		InStock: req.InStock,
		OnOrder: req.OnOrder,
	}
}

func PartsFilterFromQuery(names []string) model.PartsFilter {
	return model.PartsFilter{
		Names: lo.Compact(names),
	}
}
