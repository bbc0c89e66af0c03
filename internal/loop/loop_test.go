package loop

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/bulletdodge/internal/loop/client"
)

func TestRunLocalSession(t *testing.T) {
	var out bytes.Buffer
	opts := client.ClientOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
		Logger:       log.New(io.Discard),
	}

	done := make(chan error, 1)
	go func() { done <- Run(bufio.NewReader(strings.NewReader(" q")), &out, opts) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}

	got := out.String()
	if !strings.HasPrefix(got, "\033[?25l") {
		t.Errorf("expected cursor hidden first, got %q", got[:min(len(got), 10)])
	}
	if !strings.HasSuffix(got, "\033[?25h") {
		t.Error("expected cursor restored on exit")
	}
}
