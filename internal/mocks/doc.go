// Package mocks provides hand-written test doubles for the interfaces that
// connect the generation pipeline, its stores and the HTTP layer.
//
// Each mock exposes function fields that override its behaviour, default
// return values used when no function is set, and call tracking so tests
// can verify what the code under test passed in.
package mocks
