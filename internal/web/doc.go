// Package web holds the server-rendered HTML views of the converter.
// Templates are embedded in the binary and parsed once at startup.
package web
