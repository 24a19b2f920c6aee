// Package store persists published templates and their responses.
//
// Records live under two fixed keys of a KV backend: "published-forms" holds
// a JSON object of templates keyed by id and "form-responses" holds a JSON
// object of response lists keyed by template id. Backends for memory, plain
// files, SQLite (gorm), Redis and MongoDB are provided; OpenKV selects one from
// configuration.
package store
