// Package generation turns a content item into an SEO meta description.
//
// The Generator runs a fixed pipeline: it checks the generation settings,
// resolves the configured chat provider, extracts plain text from the item,
// builds the system and user prompts, calls the provider and post-processes
// the answer. Every run ends in a Result, which is either a Success carrying
// the description or a Failure carrying a user-facing message. Provider SDKs
// live behind the ChatProvider interface in the platform packages, so this
// package never depends on a specific LLM vendor.
package generation
