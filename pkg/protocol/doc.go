// Package protocol defines the binary wire format between a Glint
// server session and its thin client.
//
// Messages travel in frames: a 4-byte header (type, flags, big-endian
// payload length) followed by the payload. Payloads are encoded with a
// compact varint-based codec; strings are length-prefixed UTF-8.
//
// Frame types:
//   - Hello: server → client session greeting.
//   - Event: client → server user interactions (click, input, ...).
//   - Patches: server → client DOM mutations, batched per dispatch.
//   - Control: ping/pong and orderly shutdown.
//   - Error: server → client fault reports.
//
// Length prefixes are validated against the remaining buffer and an
// allocation ceiling before any allocation.
package protocol
