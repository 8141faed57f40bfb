package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple line", input: "hello\n", want: "hello"},
		{name: "trims whitespace", input: "  padded \n", want: "padded"},
		{name: "partial line at EOF", input: "no newline", want: "no newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reader := bufio.NewReader(strings.NewReader(tt.input))

			got, err := GetSimpleText(reader, "Prompt", &out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "Prompt") {
				t.Fatalf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("first line\nsecond line\n\nignored\n"))

	got, err := GetMultiline(reader, "Enter text", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first line\nsecond line" {
		t.Fatalf("got %q", got)
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pw) != "s3cret" {
		t.Fatalf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}
