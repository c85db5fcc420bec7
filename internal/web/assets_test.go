package web

import (
	"io/fs"
	"strings"
	"testing"
)

// TestStaticFS_ContainsLoader verifies the loader and landing page are embedded.
func TestStaticFS_ContainsLoader(t *testing.T) {
	static, err := StaticFS()
	if err != nil {
		t.Fatalf("static fs: %v", err)
	}
	for _, name := range []string{"eaglermobile.user.js", "index.html"} {
		data, err := fs.ReadFile(static, name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
	loader, _ := fs.ReadFile(static, "eaglermobile.user.js")
	if !strings.Contains(string(loader), "@run-at          document-start") {
		t.Fatalf("loader must run at document-start")
	}
}

// TestLoader_ForwardsThroughCurrentPrototype verifies held window listeners are
// registered through the prototype in place at call time, not a captured copy.
func TestLoader_ForwardsThroughCurrentPrototype(t *testing.T) {
	static, err := StaticFS()
	if err != nil {
		t.Fatalf("static fs: %v", err)
	}
	data, err := fs.ReadFile(static, "eaglermobile.user.js")
	if err != nil {
		t.Fatalf("read loader: %v", err)
	}
	loader := string(data)
	if strings.Contains(loader, "const add = window.addEventListener") {
		t.Fatalf("loader must not capture window.addEventListener before the shim patches it")
	}
	for _, want := range []string{
		"EventTarget.prototype.addEventListener.call(",
		"delete window.addEventListener",
		"delete window.removeEventListener",
	} {
		if !strings.Contains(loader, want) {
			t.Fatalf("loader missing %q", want)
		}
	}
}
