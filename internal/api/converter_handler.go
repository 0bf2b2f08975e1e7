package api

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/unit-converter/internal/api/shared"
	"github.com/phrazzld/unit-converter/internal/domain"
	"github.com/phrazzld/unit-converter/internal/platform/logger"
	"github.com/phrazzld/unit-converter/internal/service"
	"github.com/phrazzld/unit-converter/internal/web"
)

// ConverterHandler serves the HTML pages of the converter.
type ConverterHandler struct {
	converter service.ConverterService
	renderer  *web.Renderer
	logger    *slog.Logger
}

// NewConverterHandler creates a new ConverterHandler.
func NewConverterHandler(
	converter service.ConverterService,
	renderer *web.Renderer,
	logger *slog.Logger,
) *ConverterHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConverterHandler{
		converter: converter,
		renderer:  renderer,
		logger:    logger.With(slog.String("component", "converter_handler")),
	}
}

// Home handles GET / and lists the categories.
func (h *ConverterHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageHome, h.pageData(r))
}

// Form handles GET /convert/{category}.
func (h *ConverterHandler) Form(w http.ResponseWriter, r *http.Request) {
	cu, err := h.converter.Units(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		h.renderError(w, r, err, "")
		return
	}

	data := h.pageData(r)
	data.Title = cu.Category.Title()
	data.Category = cu.Category
	data.Units = cu.Units
	data.Form = defaultSelection(cu.Units)
	h.render(w, r, http.StatusOK, web.PageForm, data)
}

// Result handles POST /convert/{category}/result. A GET renders the
// result page with nothing submitted, or a 404 for an unknown category.
func (h *ConverterHandler) Result(w http.ResponseWriter, r *http.Request) {
	rawCategory := chi.URLParam(r, "category")
	category, err := domain.ParseCategory(rawCategory)

	if r.Method != http.MethodPost {
		if err != nil {
			h.renderError(w, r, err, "")
			return
		}
		data := h.pageData(r)
		data.Title = "Result"
		data.Category = category
		h.render(w, r, http.StatusOK, web.PageResult, data)
		return
	}

	if err := shared.ParseForm(w, r); err != nil {
		h.renderError(w, r, domain.NewValidationError("form", "could not be parsed", domain.ErrValidation), category)
		return
	}

	form := ConvertForm{
		Value:    r.PostForm.Get("value"),
		FromUnit: r.PostForm.Get("from_unit"),
		ToUnit:   r.PostForm.Get("to_unit"),
	}
	if err := shared.ValidateRequest(form); err != nil {
		h.renderError(w, r, validationToDomainError(err), category)
		return
	}

	result, err := h.converter.Convert(r.Context(), service.ConvertInput{
		Category: rawCategory,
		FromUnit: form.FromUnit,
		ToUnit:   form.ToUnit,
		Value:    form.Value,
	})
	if err != nil {
		h.renderError(w, r, err, category)
		return
	}

	data := h.pageData(r)
	data.Title = "Result"
	data.Category = result.Request.Category
	data.Result = result
	h.render(w, r, http.StatusOK, web.PageResult, data)
}

// renderError shows err on the shared result page with the mapped status.
// category may be empty when the request named no valid category.
func (h *ConverterHandler) renderError(w http.ResponseWriter, r *http.Request, err error, category domain.Category) {
	status := MapErrorToStatusCode(err)
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if status >= http.StatusInternalServerError {
		log.Error("conversion page failed", slog.Any("error", err), slog.String("path", r.URL.Path))
	} else {
		log.Debug("rejected conversion input", slog.Any("error", err), slog.Int("status", status))
	}

	data := h.pageData(r)
	data.Title = "Result"
	data.Category = category
	data.Error = GetSafeErrorMessage(err)
	if status >= http.StatusInternalServerError || errors.Is(err, domain.ErrInvalidCategory) {
		data.TraceID = shared.GetTraceID(r.Context())
	}
	h.render(w, r, status, web.PageResult, data)
}

// render executes the page into a buffer first so a template failure can
// still produce a clean 500.
func (h *ConverterHandler) render(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	page web.Page,
	data web.PageData,
) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Error("failed to render page", slog.String("page", string(page)), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("failed to write page", slog.Any("error", err))
	}
}

func (h *ConverterHandler) pageData(r *http.Request) web.PageData {
	categories := h.converter.Categories(r.Context())
	names := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Category)
	}
	return web.PageData{Categories: names}
}

// defaultSelection preselects the first unit as source and the second as target.
func defaultSelection(units []domain.Unit) web.FormValues {
	var f web.FormValues
	if len(units) > 0 {
		f.FromUnit = units[0].ID
		f.ToUnit = units[0].ID
	}
	if len(units) > 1 {
		f.ToUnit = units[1].ID
	}
	return f
}
