package clipboard

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

func TestWriteOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	var buf bytes.Buffer
	if err := writeOSC52(&buf, "2018-01-01\t15.2"); err != nil {
		t.Fatalf("writeOSC52: %v", err)
	}
	want := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte("2018-01-01\t15.2")) + "\x07"
	if buf.String() != want {
		t.Errorf("sequence = %q, want %q", buf.String(), want)
	}
}

func TestWriteOSC52InsideTmux(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")

	var buf bytes.Buffer
	if err := writeOSC52(&buf, "x"); err != nil {
		t.Fatalf("writeOSC52: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1bPtmux;") {
		t.Errorf("tmux sequence should use DCS passthrough, got %q", buf.String())
	}
}

func TestOSC52UnsupportedOnDumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if osc52Supported() {
		t.Fatal("TERM=dumb must disable OSC52")
	}
	if err := copyOSC52("x"); err == nil {
		t.Fatal("copy should fail without OSC52 support")
	}
}
