//go:build js && wasm

package dom

import (
	"io"
	"net/http"
	"syscall/js"
)

// ConfigGlobal is the window property pages use to configure the shim.
const ConfigGlobal = "eaglerMobile"

// ReadConfig returns window.eaglerMobile as strings. Functions are skipped.
func ReadConfig() map[string]string {
	out := make(map[string]string)
	cfg := js.Global().Get(ConfigGlobal)
	if cfg.Type() != js.TypeObject {
		return out
	}
	keys := js.Global().Get("Object").Call("keys", cfg)
	str := js.Global().Get("String")
	for i := 0; i < keys.Length(); i++ {
		k := keys.Index(i).String()
		v := cfg.Get(k)
		if v.Type() == js.TypeFunction || v.IsUndefined() || v.IsNull() {
			continue
		}
		out[k] = str.Invoke(v).String()
	}
	return out
}

// SignalReady calls window.eaglerMobile.onReady when the loader provides it.
func SignalReady() {
	cfg := js.Global().Get(ConfigGlobal)
	if cfg.Type() != js.TypeObject {
		return
	}
	if fn := cfg.Get("onReady"); fn.Type() == js.TypeFunction {
		fn.Invoke()
	}
}

// Fetch downloads url with the browser fetch API behind net/http. It must
// not be called from a JS callback.
func Fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// StatusError is a non-200 fetch response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return http.StatusText(e.Code) + ": " + e.URL
}
