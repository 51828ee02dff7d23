package snake

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func TestInteractiveFalseForBuffers(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(&bytes.Buffer{})
	if Interactive(cmd) {
		t.Fatalf("buffers are not terminals")
	}
}

func TestChooseNothing(t *testing.T) {
	if _, err := Choose(&cobra.Command{}, "Template", nil); err == nil {
		t.Fatalf("expected an error for an empty list")
	}
}

func TestNopCloser(t *testing.T) {
	var buf bytes.Buffer
	w := NopCloser(&buf)
	_, _ = w.Write([]byte("hi"))
	if err := w.Close(); err != nil || buf.String() != "hi" {
		t.Fatalf("unexpected %q, %v", buf.String(), err)
	}
}
