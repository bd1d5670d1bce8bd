// Package core provides the business logic of the CSV viewer.
//
// It sits between the pure parser in package csvtext and the transports
// (HTTP server, CLI). It can be used by web handlers, the CLI, or tests
// without modification.
//
// # Service
//
// [Service] owns the persisted raw text. It detects the delimiter, parses
// the text into a [View] for display, and stores the original text (never the
// parsed table) under the fixed key [StorageKey]:
//
//	svc := core.NewService(store.NewMemory(), core.Options{})
//	view, err := svc.Load(ctx, "name;age\nAlice;30")
//	// view.Delimiter == csvtext.Semicolon
//
// [Service.Scope] returns a Service whose keys live in a separate namespace,
// which the web layer uses to give each browser session its own slot.
//
// # Decoding
//
// [Decode] and [ReadText] turn uploaded bytes into the UTF-8 text the parser
// expects, stripping byte order marks and falling back to Windows-1252 for
// legacy spreadsheet exports.
//
// # Error Handling
//
// Parsing never fails. Errors come from I/O only and are mapped to
// user-facing messages with [MapError]:
//
//   - FILE001-FILE004: upload problems (size, encoding, missing file)
//   - VAL001: unsupported delimiter
//   - STORE001-STORE002: nothing stored, storage unavailable
//   - UPL004-UPL005: cancelled or timed out requests
//   - RATE001: rate limited
package core
