package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCode1(t *testing.T) {
	var code int
	original := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = original })

	var out bytes.Buffer
	exitf(&out, "fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if got := out.String(); got != "fatal: something broke\n" {
		t.Fatalf("output = %q, want %q", got, "fatal: something broke\n")
	}
}
