// cmd/skin-profile/main_test.go

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mcp-skin/internal/services"
)

func TestRunCSV(t *testing.T) {
	var out, errb bytes.Buffer
	if err := run([]string{"-format", "csv", "-skin", "0"}, &out, &errb); err != nil {
		t.Fatalf("run: %v (%s)", err, errb.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1+500+501 {
		t.Fatalf("unexpected line count %d", len(lines))
	}
}

func TestRunRejectsInvalid(t *testing.T) {
	var out, errb bytes.Buffer
	err := run([]string{"-k", "0"}, &out, &errb)
	if !errors.Is(err, services.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if err := run([]string{"-format", "xml"}, &out, &errb); err == nil {
		t.Fatalf("unknown format must fail")
	}
	if err := run([]string{"-nope"}, &out, &errb); err == nil {
		t.Fatalf("unknown flag must fail")
	}
}
