package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// imageExts are the supported input extensions, matched
// case-insensitively.
var imageExts = []string{"jpg", "jpeg", "png", "bmp"}

// EnsureDir creates a directory if it doesn't exist. A pre-existing
// directory is not an error.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// GetFileExtension returns the file extension without the dot,
// lowercased.
func GetFileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if len(ext) > 0 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

// IsImageFile checks if a file has a supported image extension.
func IsImageFile(filename string) bool {
	ext := GetFileExtension(filename)
	for _, imgExt := range imageExts {
		if ext == imgExt {
			return true
		}
	}
	return false
}

// OutputName derives the output path for an input file: the suffix is
// inserted before the extension and the file is placed in outputDir.
// The extension never changes.
func OutputName(inputFile, outputDir, suffix string) string {
	baseName := filepath.Base(inputFile)
	ext := filepath.Ext(baseName)
	stem := strings.TrimSuffix(baseName, ext)
	return filepath.Join(outputDir, fmt.Sprintf("%s%s%s", stem, suffix, ext))
}

// FileExists checks if a file exists and is not a directory.
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}
