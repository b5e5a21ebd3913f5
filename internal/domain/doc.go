// Package domain defines the core domain types and interfaces.
//
// This package contains concept-oriented files (emoji.go, view.go, dataset.go, errors.go)
// with shared types and small value-level operations. No I/O here, just contracts.
package domain
