// Package domain contains the core entities of the meta description service:
// content items, bundles, editor-managed generation settings and the
// provider/model pair derived from them. It is independent of any storage,
// transport or LLM vendor.
package domain
