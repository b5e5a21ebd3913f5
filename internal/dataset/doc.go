// Package dataset reads the summary and expanded emoji datasets.
//
// A Source is a local file or an http(s) URL. Loader reads both sources
// concurrently and fails as a whole when either read or parse fails.
package dataset
