// Package template defines the template engine seam used by the HTML preview
// and the web views. The gotemplate subpackage provides a pongo2 backed
// implementation.
package template
