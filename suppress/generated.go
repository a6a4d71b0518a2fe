package suppress

import (
	"bytes"
	"path"
	"strings"
)

var generatedSuffixes = []string{".g.cs", ".g.i.cs", ".designer.cs", ".generated.cs"}

// headerLimit bounds how far into a file the auto-generated marker is searched
const headerLimit = 2048

// IsGenerated reports whether a source file was produced by a code generator
func IsGenerated(name string, src []byte) bool {
	lower := strings.ToLower(path.Base(name))
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	header := src
	if len(header) > headerLimit {
		header = header[:headerLimit]
	}
	return bytes.Contains(header, []byte("<auto-generated"))
}
