// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/board).
// This root package holds the error taxonomy (sentinel kinds, coded errors and
// the multi-error carrier), field-level validation errors, and the Clock port
// that the board aggregate reads timestamps from.
package domain
