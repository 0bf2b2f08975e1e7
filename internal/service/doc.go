// Package service contains the application use cases of the unit converter.
//
// ConverterService sits between the delivery layer (HTML forms and the JSON
// API in internal/api) and the pure conversion engine in
// internal/domain/conversion. It turns raw form strings into a validated
// domain.ConversionRequest, runs the conversion, applies the display rounding
// policy and records logs and metrics. It never depends on net/http.
package service
