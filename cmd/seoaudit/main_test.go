package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/webperf-id/seo-audit/internal/model"
)

func TestRun_Preview(t *testing.T) {
	var buf bytes.Buffer
	cli := &CLI{Preview: true, URL: "demo.example"}

	if err := run(context.Background(), cli, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Score: 16/16 (100%)") {
		t.Errorf("output missing score line:\n%s", out)
	}
	if !strings.Contains(out, "demo.example") {
		t.Errorf("output missing hostname substitution:\n%s", out)
	}
	if !strings.Contains(out, "[INFO] Page Title") {
		t.Errorf("output missing details row:\n%s", out)
	}
}

func TestRun_PreviewJSON(t *testing.T) {
	var buf bytes.Buffer
	cli := &CLI{Preview: true, JSON: true}

	if err := run(context.Background(), cli, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report model.Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if report.Score.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", report.Score.Percentage)
	}
}

func TestRun_RequiresURL(t *testing.T) {
	var buf bytes.Buffer
	cli := &CLI{}

	if err := run(context.Background(), cli, &buf); err == nil {
		t.Fatal("expected error when no URL and no --preview, got nil")
	}
}
