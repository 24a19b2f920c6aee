// Package web serves published forms and their responses over HTTP: a form
// library, a live preview of each form, its OpenAPI schema, the response list
// and a single response shown read-only or pre-filled for editing. The
// surface is read-only; responses are collected by the fill command.
package web
