package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"photo.png", true},
		{"photo.bmp", true},
		{"photo.PNG", true},
		{"photo.gif", false},
		{"photo.webp", false},
		{"photo.txt", false},
		{"photo", false},
		{"archive.jpg.zip", false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.name); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGetFileExtension(t *testing.T) {
	if got := GetFileExtension("photo.JPG"); got != "jpg" {
		t.Errorf("got %q, want jpg", got)
	}
	if got := GetFileExtension("noext"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestOutputName(t *testing.T) {
	got := OutputName("/photos/trip/IMG_001.JPG", "/photos/trip/trip_watermark", "_watermark")
	want := filepath.Join("/photos/trip/trip_watermark", "IMG_001_watermark.JPG")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("first EnsureDir: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on existing directory: %v", err)
	}
	if !DirExists(dir) {
		t.Error("directory was not created")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("expected FileExists true for regular file")
	}
	if FileExists(dir) {
		t.Error("expected FileExists false for directory")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("expected FileExists false for missing path")
	}
}
