package util

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	defer func(was bool) { Logging = was }(Logging)

	Logging = false
	Logf("quiet %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("logged %q", buf.String())
	}

	Logging = true
	Logf("loud %d", 2)
	if !strings.Contains(buf.String(), "loud 2") {
		t.Fatalf("logged %q", buf.String())
	}

	Warnf("careful")
	if !strings.Contains(buf.String(), "warning: careful") {
		t.Fatalf("logged %q", buf.String())
	}
}
