package api

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/unit-converter/internal/domain/conversion"
	"github.com/phrazzld/unit-converter/internal/platform/logger"
	"github.com/phrazzld/unit-converter/internal/service"
	"github.com/phrazzld/unit-converter/internal/web"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires both handlers over the default registry the same way
// the server does.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	converter, err := service.NewConverterService(conversion.NewDefaultService(), conversion.DefaultPrecision, nil, log)
	require.NoError(t, err)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	pages := NewConverterHandler(converter, renderer, log)
	apiHandler := NewConvertAPIHandler(converter, log)

	r := chi.NewRouter()
	r.Get("/", pages.Home)
	r.Get("/convert/{category}", pages.Form)
	r.Get("/convert/{category}/result", pages.Result)
	r.Post("/convert/{category}/result", pages.Result)
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", apiHandler.ListCategories)
		r.Get("/categories/{category}", apiHandler.GetCategory)
		r.Post("/convert", apiHandler.Convert)
	})
	return r
}
