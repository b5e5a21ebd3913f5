// Package table derives the emoji table projection from the summary dataset.
//
// Every function here is pure: the same records and view state always produce the
// same rows. Filter narrows, Sort orders, Render formats; Project chains the three.
package table
