// Package layout implements the edit operations of the form builder. Every
// operation takes a model.Form snapshot and returns an updated snapshot or an
// error; the input is never modified.
//
// Business-rule refusals (deleting the only row of a section, resizing a
// field past the 100% row budget) surface as *Rejection values carrying the
// message shown to the user. References to sections, rows or fields that are
// not part of the snapshot wrap ErrUnknownReference; editors that race with a
// recomputed snapshot can safely ignore them.
package layout
