// Package model defines the form layout document: a Form holds Sections, a
// Section holds Rows and a Row is an ordered slice of Fields rendered side by
// side. Each Field declares a Size category that maps to a fixed share of the
// row (sm=33.33, md=50, lg=66.66, xl=100) and the shares of a row never exceed
// the 100% width budget.
//
// The package only carries data and read-only invariant checks
// (IsRowOverflowing, IsLastRow, CheckStructure). Mutations live in
// pkg/layout so every write path re-uses the same width arithmetic defined in
// geometry.go. Templates and Responses are the persisted records handed to
// pkg/store; their JSON shape matches the records written by earlier
// browser-based builds (`formLabel`, `viewType`, `responseId`, ...).
package model
