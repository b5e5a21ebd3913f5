// Package app provides the dashboard service.
//
// Owns the load-once lifecycle of the emoji dataset and projects it into table rows
// and chart figures for the HTTP layer. Depends on the domain loader interface, not
// a concrete source.
package app
