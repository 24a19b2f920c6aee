// Package fill collects a response to a published form from a terminal. It
// walks the form in document order, prompts for every field through a
// PromptDriver and re-prompts until the compiled validation rules accept the
// answer.
package fill
