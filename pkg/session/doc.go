// Package session owns the mutable state of a form editing session and the
// submission flow for published templates.
//
// A Builder holds the draft form being edited. Every change goes through
// Builder.Update, which hands the current form to a layout operation and
// keeps the result only when the operation succeeds. A Responder validates
// submitted values against a template's compiled ruleset before storing them.
package session
