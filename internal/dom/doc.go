// Package dom adapts the browser page to the shim's plain Go interfaces. It
// installs the prototype patches, creates control elements, dispatches
// synthetic events and streams traces over the browser WebSocket.
//
// Everything except this file is built for js/wasm only.
package dom
