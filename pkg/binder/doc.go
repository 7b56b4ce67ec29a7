// Package binder parses HTTP requests into typed values using struct tags.
//
// Two binders are provided: JSON for request bodies (strict decoding with
// content-type enforcement and a size cap) and Path for chi route parameters
// via `path` tags. Binders compose in handler wrapping; each processes only
// its own tags.
package binder
