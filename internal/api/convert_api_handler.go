package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/unit-converter/internal/api/shared"
	"github.com/phrazzld/unit-converter/internal/domain"
	"github.com/phrazzld/unit-converter/internal/platform/logger"
	"github.com/phrazzld/unit-converter/internal/service"
)

// ConvertAPIHandler serves the JSON API.
type ConvertAPIHandler struct {
	converter service.ConverterService
	logger    *slog.Logger
}

// NewConvertAPIHandler creates a new ConvertAPIHandler.
func NewConvertAPIHandler(converter service.ConverterService, logger *slog.Logger) *ConvertAPIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConvertAPIHandler{
		converter: converter,
		logger:    logger.With(slog.String("component", "convert_api_handler")),
	}
}

// ListCategories handles GET /api/categories.
func (h *ConvertAPIHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.converter.Categories(r.Context())

	resp := CategoriesResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, cu := range categories {
		resp.Categories = append(resp.Categories, categoryToResponse(cu))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetCategory handles GET /api/categories/{category}.
func (h *ConvertAPIHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	cu, err := h.converter.Units(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(cu))
}

// Convert handles POST /api/convert.
func (h *ConvertAPIHandler) Convert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ConvertRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid conversion request body", slog.Any("error", err))
		HandleAPIError(w, r, domain.NewValidationError("body", "is malformed", domain.ErrValidation),
			"Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, validationToDomainError(err), "")
		return
	}

	result, err := h.converter.Convert(r.Context(), service.ConvertInput{
		Category: req.Category,
		FromUnit: req.FromUnit,
		ToUnit:   req.ToUnit,
		Value:    string(req.Value),
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result))
}
