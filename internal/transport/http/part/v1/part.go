package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/you-humble/parts-inventory/internal/converter"
	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/platform/logger"
	partsv1 "github.com/you-humble/parts-inventory/pkg/api/parts/v1"
)

type InventoryService interface {
	Create(ctx context.Context, part *model.Part) (string, error)
	Part(ctx context.Context, partID string) (*model.Part, error)
	ListParts(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error)
	Update(ctx context.Context, partID string, patch model.PartPatch) error
	Delete(ctx context.Context, partID string) error
}

type handler struct {
	svc          InventoryService
	validate     *validator.Validate
	legacyCreate bool
}

type Option func(*handler)

// WithLegacyCreate makes POST /parts ignore the request body and insert
// model.LegacyScrew.
func WithLegacyCreate(enabled bool) Option {
	return func(h *handler) {
		h.legacyCreate = enabled
	}
}

func NewPartHandler(service InventoryService, opts ...Option) *handler {
	h := &handler{
		svc:      service,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the parts routes on r.
func (h *handler) Register(r chi.Router) {
	r.Route("/parts", func(r chi.Router) {
		r.Get("/", h.ListParts)
		r.Post("/", h.CreatePart)
		r.Get("/{id}", h.GetPart)
		r.Put("/{id}", h.UpdatePart)
		r.Delete("/{id}", h.DeletePart)
	})
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	filter := converter.PartsFilterFromQuery(r.URL.Query()["partName"])

	parts, err := h.svc.ListParts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartsToAPI(parts))
}

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	part := model.LegacyScrew()

	if !h.legacyCreate {
		var req partsv1.CreatePartRequest
		if err := h.decode(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		part = converter.CreatePartRequestToModel(&req)
	}

	id, err := h.svc.Create(r.Context(), part)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, partsv1.CreatePartResponse{ID: id})
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Part(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartToAPI(p))
}

func (h *handler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// a malformed id is a 404 whatever the body holds
	if err := model.ValidatePartID(id); err != nil {
		writeError(w, r, err)
		return
	}

	var req partsv1.UpdatePartRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.svc.Update(r.Context(), id, converter.UpdatePartRequestToPatch(&req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, partsv1.StatusResponse{Status: partsv1.StatusSuccess})
}

func (h *handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, partsv1.StatusResponse{Status: partsv1.StatusDeleted})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
	}

	writeJSON(w, r, status, body)
}

func mapError(err error) (int, partsv1.ErrorResponse) {
	var vErr *model.ValidationError

	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, partsv1.ErrorResponse{Error: vErr.Error()}
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, partsv1.ErrorResponse{Error: model.ErrValidation.Error()}
	case errors.Is(err, model.ErrPartNotFound),
		errors.Is(err, model.ErrInvalidPartID):
		return http.StatusNotFound, partsv1.ErrorResponse{Error: partsv1.ErrPartNotFound}
	default:
		return http.StatusInternalServerError, partsv1.ErrorResponse{Error: partsv1.ErrInternal}
	}
}
