// Package server delivers pages to real browsers.
//
// It serves the server-rendered HTML of registered pages over chi
// routes and runs one live WebSocket session per connected client. A
// session owns a page runtime: events arrive as binary frames, are
// decoded and dispatched on the session's event loop, and the DOM
// mutations they cause flow back as patch frames. Timer callbacks
// (debounce windows, toast lifecycles) run on the same loop, so page
// code never sees concurrency.
//
// Routes:
//   - registered page paths: full-document HTML, node IDs included
//   - /_glint/live: WebSocket endpoint (?path= selects the page)
//   - /healthz: liveness probe
//   - /metrics: Prometheus exposition
//
// Minimal setup:
//
//	srv := server.New(nil)
//	srv.SetBindings(glint.DefaultBindings())
//	srv.Handle("/", demoPage)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
