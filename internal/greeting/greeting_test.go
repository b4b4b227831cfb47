package greeting

import (
	"bytes"
	"testing"
)

func TestPrint_OneLine(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf); err != nil {
		t.Fatalf("print: %v", err)
	}
	if buf.String() != "Hello, World!\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
