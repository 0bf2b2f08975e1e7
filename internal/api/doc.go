// Package api handles incoming HTTP requests for the converter: the
// server-rendered HTML pages and the JSON API. It validates request input,
// delegates to the converter service and maps domain errors to HTTP status
// codes and user-facing messages.
package api
