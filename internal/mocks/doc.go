// Package mocks provides hand-written test doubles for the converter's
// service interfaces. Each mock records its calls and can be configured
// with either fixed return values or a custom function.
package mocks
