// Package render defines the renderer contract shared by the HTML and
// terminal previews, the registry used to pick one by name, and the
// presentation view both build from a form.
package render
