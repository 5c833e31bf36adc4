// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the generation pipeline, the settings file
// and the content store to the JSON endpoints used by the editor UI.
package api
