//go:build !debug

package debuglog

import (
	"bytes"
	"testing"
)

func TestReleaseBuildIsInert(t *testing.T) {
	if Active {
		t.Error("Active should be false without the debug build tag")
	}

	var buf bytes.Buffer
	SetOutput(&buf)
	SetFilter("*")

	done := Group("A")
	Logf("x %d", 1)
	Dump("v", 42)
	done()
	GroupAt("a/b.go:1", "B")()
	LogfAt("a/b.go:2", "y")
	DumpAt("a/b.go:3", "w", 7)

	if buf.Len() != 0 {
		t.Errorf("release build produced output: %q", buf.String())
	}
	if Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", Depth())
	}
	if Filter() != "" {
		t.Errorf("Filter() = %q, want empty", Filter())
	}
	if Enabled("a/b.go:1") {
		t.Error("Enabled() should always be false")
	}
}
