// Package validation compiles a form layout into a per-field ruleset and
// checks submissions and publish requests against it.
//
// Compile walks every field of a model.Form and derives one Rule per field
// from its type and required flag. Base-type checks run on per-field
// kin-openapi schemas so the same ruleset can be exported as an OpenAPI
// object schema for external consumers.
package validation
