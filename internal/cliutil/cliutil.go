// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPath expands "~" and $VARS in a path argument. Glob characters are
// kept literally, so it is safe for files that do not exist yet. "-" (stdio)
// is returned as is.
func ExpandPath(p string) (string, error) {
	if p == "" || p == "-" {
		return p, nil
	}
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", p, err)
		}
		p = filepath.Join(home, p[1:])
	}
	return p, nil
}

// ExpandInput is ExpandPath for files that must already exist. An existing
// literal path wins; otherwise a glob must match exactly one file.
func ExpandInput(p string) (string, error) {
	p, err := ExpandPath(p)
	if err != nil || p == "" || p == "-" {
		return p, err
	}
	if !hasGlobMeta(p) {
		return p, nil
	}
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	m, err := filepath.Glob(p)
	if err != nil {
		return "", fmt.Errorf("bad glob %q: %v", p, err)
	}
	switch len(m) {
	case 0:
		return "", fmt.Errorf("no input matched %q", p)
	case 1:
		return m[0], nil
	}
	return "", fmt.Errorf("%q matched %d files; expected one", p, len(m))
}
