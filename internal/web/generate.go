package web

// The shim bundle and the Go wasm runtime are build outputs, not sources.
// Run `go generate ./internal/web` before building the server so both are
// embedded.

//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/shim.wasm ../../cmd/eaglermobile"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/ 2>/dev/null || cp \"$(go env GOROOT)/misc/wasm/wasm_exec.js\" static/"
