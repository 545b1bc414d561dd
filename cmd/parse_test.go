package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLongAndShortFlags(t *testing.T) {
	opts, err := Parse([]string{"-i", "in.json", "-o", "out.json", "--backup", "--check", "--diff", "-v"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if opts.Input != "in.json" || opts.Output != "out.json" {
		t.Errorf("paths = %q/%q", opts.Input, opts.Output)
	}
	if !opts.Backup || !opts.Check || !opts.Diff || !opts.Verbose {
		t.Errorf("flags not set: %+v", opts)
	}
	if opts.NoBackup || opts.Watch || opts.ShowHelp || opts.ShowVersion {
		t.Errorf("unexpected flags set: %+v", opts)
	}
}

func TestParseCombinedShortFlags(t *testing.T) {
	opts, err := Parse([]string{"-vx"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !opts.Verbose || !opts.Debug {
		t.Errorf("combined shorts not parsed: %+v", opts)
	}
}

func TestParseDefaults(t *testing.T) {
	opts, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if opts.Input != "" || opts.Backup || opts.NoSchema {
		t.Errorf("zero arguments should produce zero options: %+v", opts)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := Parse([]string{"--input", "x", "--bogus"})
	if err == nil {
		t.Fatal("expected an error for --bogus")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %T; want *ParseError", err)
	}
	if pe.Index != 2 {
		t.Errorf("Index = %d; want 2 (pointing at --bogus)", pe.Index)
	}
	rendered := pe.Error()
	if !strings.Contains(rendered, "^") {
		t.Error("rendered error has no caret marker")
	}
	if !strings.Contains(rendered, "--help") {
		t.Error("rendered error does not mention --help")
	}
}

func TestParseRejectsPositionalArgs(t *testing.T) {
	_, err := Parse([]string{"meta.json"})
	if err == nil {
		t.Fatal("expected an error for a positional argument")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %T; want *ParseError", err)
	}
	if pe.Index != 0 {
		t.Errorf("Index = %d; want 0", pe.Index)
	}
	if !strings.Contains(pe.Message, "invalid option") {
		t.Errorf("Message = %q", pe.Message)
	}
}

func TestParseHelpAndVersion(t *testing.T) {
	opts, err := Parse([]string{"--help"})
	if err != nil {
		t.Fatal(err)
	}
	if !opts.ShowHelp {
		t.Error("ShowHelp not set")
	}

	opts, err = Parse([]string{"-V"})
	if err != nil {
		t.Fatal(err)
	}
	if !opts.ShowVersion {
		t.Error("ShowVersion not set")
	}
}
