// Package dom implements the in-memory document tree that Umbra components
// live in: elements with attributes, text and children, shadow roots for
// isolated rendering, connection signals, and a per-element property store.
//
// The tree is not goroutine-safe. All mutation must happen on the single
// goroutine that drives the document; only scheduler.Queue.Defer may be
// called from elsewhere.
package dom
