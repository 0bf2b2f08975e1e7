package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phrazzld/unit-converter/internal/domain"
	"github.com/phrazzld/unit-converter/internal/service"
)

// ConvertForm holds the fields posted by the HTML conversion form.
type ConvertForm struct {
	Value    string `validate:"required"`
	FromUnit string `validate:"required"`
	ToUnit   string `validate:"required"`
}

// ConvertRequest defines the payload for the JSON conversion endpoint.
type ConvertRequest struct {
	Category string `json:"category"  validate:"required"`
	FromUnit string `json:"from_unit" validate:"required"`
	ToUnit   string `json:"to_unit"   validate:"required"`

	// Value accepts a JSON number or a string; the text is parsed by the service.
	Value ValueText `json:"value" validate:"required"`
}

// ValueText is the raw text of a JSON number or string. Parsing is left to
// service.ParseValue so the JSON API reports the same value errors as the
// HTML form.
type ValueText string

// UnmarshalJSON implements json.Unmarshaler. Numbers keep their literal text,
// strings are unquoted and null leaves the value empty.
func (v *ValueText) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*v = ""
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = ValueText(s)
		return nil
	case json.Valid(data) && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')):
		*v = ValueText(raw)
		return nil
	default:
		return fmt.Errorf("value must be a number or a string, got %s", raw)
	}
}

// ConvertResponse defines the successful response of the JSON conversion endpoint.
type ConvertResponse struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	FromUnit string  `json:"from_unit"`
	ToUnit   string  `json:"to_unit"`
	Value    float64 `json:"value"`

	// Result is the full precision converted value.
	Result float64 `json:"result"`

	// Formatted is Result after the display rounding policy.
	Formatted string `json:"formatted"`
	Summary   string `json:"summary"`
}

// UnitResponse describes one unit of a category.
type UnitResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CategoryResponse describes a category and its units in display order.
type CategoryResponse struct {
	Name  string         `json:"name"`
	Title string         `json:"title"`
	Units []UnitResponse `json:"units"`
}

// CategoriesResponse lists every supported category.
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func categoryToResponse(cu service.CategoryUnits) CategoryResponse {
	units := make([]UnitResponse, 0, len(cu.Units))
	for _, u := range cu.Units {
		units = append(units, UnitResponse{
			ID:     string(u.ID),
			Name:   u.Name,
			Symbol: u.Symbol,
		})
	}
	return CategoryResponse{
		Name:  string(cu.Category),
		Title: cu.Category.Title(),
		Units: units,
	}
}

func resultToResponse(r *domain.ConversionResult) ConvertResponse {
	return ConvertResponse{
		ID:        r.ID.String(),
		Category:  string(r.Request.Category),
		FromUnit:  string(r.FromUnit.ID),
		ToUnit:    string(r.ToUnit.ID),
		Value:     r.Request.Value,
		Result:    r.Value,
		Formatted: r.Formatted,
		Summary:   r.Summary(),
	}
}
