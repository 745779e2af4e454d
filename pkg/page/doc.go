// Package page is the Glint runtime for one rendered document.
//
// A Page owns a dom.Document and wires feature modules to it according
// to a binding list: each binding names a selector and a feature
// constructor, and mounting resolves the selector once and hands the
// matched elements to the feature. Selectors that match nothing produce
// a declared skip in the MountReport, never an error.
//
// After mounting, the page is driven by events. Dispatch routes an
// event to the handlers registered on the target and its ancestors,
// innermost first, then to document-level handlers, mirroring bubbling.
// Handlers mutate the document directly; the mutations accumulate in
// the document's log and FlushPatches converts them to wire patches.
//
// A page is single-threaded. All calls into a page must come from one
// goroutine; sessions guarantee this by funneling events and timer
// callbacks through their event loop.
package page
