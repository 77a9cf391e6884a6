package latex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilename is used when the caller does not provide one.
const DefaultFilename = "cv.tex"

// SanitizeFilename reduces a user-supplied filename to a safe base name with
// a .tex extension.
func SanitizeFilename(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = DefaultFilename
	}
	if !strings.HasSuffix(strings.ToLower(name), ".tex") {
		name += ".tex"
	}
	return name
}

// WriteArtifact writes LaTeX source verbatim into an isolated temporary
// directory and returns the file path. The caller streams the file back as
// an attachment and is responsible for removing the directory afterwards.
func WriteArtifact(latexSource, filename string) (string, error) {
	if strings.TrimSpace(latexSource) == "" {
		return "", fmt.Errorf("empty LaTeX source")
	}

	workDir, err := os.MkdirTemp("", "latex-artifact-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	path := filepath.Join(workDir, SanitizeFilename(filename))
	if err := os.WriteFile(path, []byte(latexSource), 0644); err != nil {
		os.RemoveAll(workDir)
		return "", fmt.Errorf("write tex file: %w", err)
	}

	return path, nil
}
