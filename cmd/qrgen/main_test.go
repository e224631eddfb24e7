package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestRootCmdHelpDoesNotPanic guards against cobra's default -h/--help
// flag colliding with one of our own shorthands; Execute used to panic
// before the root command ever ran.
func TestRootCmdHelpDoesNotPanic(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--help"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute with --help returned error: %v", err)
	}
}

func TestRootCmdShortHelpFlagDoesNotPanic(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-h"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute with -h returned error: %v", err)
	}
}

func TestRunEncodesFileToFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "payload.txt")
	outPath := filepath.Join(dir, "out.png")
	if err := os.WriteFile(inPath, []byte("HELLO"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &options{inPath: inPath, outPath: outPath, levelM: true, pixels: 2}
	if err := run(opts); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("output file was not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("output file is empty")
	}
}

func TestRunRejectsMultipleLevelFlags(t *testing.T) {
	opts := &options{levelL: true, levelM: true, pixels: 20}
	if err := run(opts); err == nil {
		t.Fatal("expected an error when more than one level flag is set")
	}
}

func TestRunRejectsNonPositivePixels(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "payload.txt")
	if err := os.WriteFile(inPath, []byte("HELLO"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := &options{inPath: inPath, pixels: 0}
	if err := run(opts); err == nil {
		t.Fatal("expected an error for non-positive pixels")
	}
}
