package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "go-image-metrics/internal/errors"
	"go-image-metrics/pkg/models"
)

func writeGradientPNG(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 9), G: uint8(y * 7), B: uint8((x + y) * 4), A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPCQICommand_JSON(t *testing.T) {
	refDir, distDir := t.TempDir(), t.TempDir()
	writeGradientPNG(t, filepath.Join(refDir, "a.png"), 20)
	writeGradientPNG(t, filepath.Join(distDir, "a.png"), 20)

	out, err := execute(t, "pcqi", "--ref", refDir, "--dist", distDir, "--format", "json")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var report models.BatchReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("Expected JSON report, got %v:\n%s", err, out)
	}
	if report.Summary.Scored != 1 {
		t.Errorf("Expected 1 scored item, got %+v", report.Summary)
	}
}

func TestUIQMCommand_Text(t *testing.T) {
	dir := t.TempDir()
	writeGradientPNG(t, filepath.Join(dir, "b.png"), 30)
	writeGradientPNG(t, filepath.Join(dir, "a.png"), 30)

	out, err := execute(t, "uiqm", dir, "--format", "text", "--workers", "2")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "succeeded: 2/2") {
		t.Errorf("Expected two scored files, got:\n%s", out)
	}
	if strings.Index(out, "a.png") > strings.Index(out, "b.png") {
		t.Errorf("Expected files in name order, got:\n%s", out)
	}
}

func TestPCQICommand_MissingDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "pcqi", "--ref", filepath.Join(dir, "missing"), "--dist", dir, "--format", "text")
	if !apperrors.IsType(err, apperrors.ErrorTypeDirectoryNotFound) {
		t.Fatalf("Expected directory not found, got %v", err)
	}
	if code := apperrors.GetExitCode(err); code != 3 {
		t.Errorf("Expected exit code 3, got %d", code)
	}
}

func TestRootCommand_InvalidFlag(t *testing.T) {
	_, err := execute(t, "uiqm", t.TempDir(), "--resample", "cubic")
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}
