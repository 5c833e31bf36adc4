// Package gemini provides a generation.ChatProvider backed by Google's
// Gemini API.
//
// This package is an infrastructure adapter: it translates the system and
// user prompts built by the generation pipeline into a GenerateContent call
// and maps the SDK's responses and errors back into the shapes the pipeline
// understands. Upstream failures surface as *generation.ProviderError with a
// message that is safe to show to editors.
package gemini
