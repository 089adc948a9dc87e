package patterns

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed defs/*.yaml
var defsFS embed.FS

// Load reads a definition file, preferring an on-disk copy (so edits and
// hot reload work during development) and falling back to the embedded
// one.
func Load(name string) ([]byte, error) {
	clean := cleanDefPath(name)
	if data, err := os.ReadFile(diskDefPath(clean)); err == nil {
		return data, nil
	}
	return defsFS.ReadFile(clean)
}

// DefNames lists the embedded definition files.
func DefNames() []string {
	entries, err := defsFS.ReadDir("defs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, "defs/"+e.Name())
	}
	return names
}

func cleanDefPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "patterns/"); ok {
		s = after
	}
	if !strings.HasPrefix(s, "defs/") {
		s = "defs/" + s
	}
	return s
}

func diskDefPath(clean string) string {
	return filepath.Join("patterns", filepath.FromSlash(clean))
}
