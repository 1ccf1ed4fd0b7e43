package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestIsYes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase yes", input: "yes", want: true},
		{name: "capitalized yes", input: "Yes", want: true},
		{name: "uppercase yes", input: "YES", want: true},
		{name: "mixed case yes", input: "yEs", want: true},
		{name: "single y", input: "y", want: false},
		{name: "true", input: "true", want: false},
		{name: "empty", input: "", want: false},
		{name: "no", input: "no", want: false},
		{name: "yes with trailing word", input: "yes please", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsYes(tt.input); got != tt.want {
				t.Errorf("IsYes(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLine(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("  my-repo  \nsecond\n"), &out)

	got, err := r.Line("Enter the name: ")
	if err != nil {
		t.Fatalf("Line() error = %v", err)
	}
	if got != "my-repo" {
		t.Errorf("Line() = %q, want %q", got, "my-repo")
	}
	if out.String() != "Enter the name: " {
		t.Errorf("prompt output = %q, want %q", out.String(), "Enter the name: ")
	}

	got, err = r.Line("Next: ")
	if err != nil {
		t.Fatalf("Line() error = %v", err)
	}
	if got != "second" {
		t.Errorf("Line() = %q, want %q", got, "second")
	}
}

func TestLine_EOF(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader(""), &out)

	_, err := r.Line("Enter the name: ")
	if !errors.Is(err, io.EOF) {
		t.Errorf("Line() error = %v, want io.EOF", err)
	}
}

func TestYesNo(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("YES\nnope\n"), &out)

	got, err := r.YesNo("Private? (yes/no): ")
	if err != nil {
		t.Fatalf("YesNo() error = %v", err)
	}
	if !got {
		t.Error("YesNo() = false for YES, want true")
	}

	got, err = r.YesNo("Invite? (yes/no): ")
	if err != nil {
		t.Fatalf("YesNo() error = %v", err)
	}
	if got {
		t.Error("YesNo() = true for nope, want false")
	}
}
