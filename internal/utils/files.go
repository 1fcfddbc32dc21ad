package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetFilename strips the directory components and the extension from a path.
func GetFilename(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OpenFile creates name.csv under outputDir, creating the directory when
// needed.
func OpenFile(outputDir, name string) (*os.File, error) {
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0750); err != nil {
			return nil, err
		}
	}
	return os.Create(filepath.Join(outputDir, name+".csv"))
}
