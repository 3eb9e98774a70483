package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Tree renders the on-disk subtree below root as an indented listing.
// maxDepth limits recursion (0 = unlimited). Unreadable entries are skipped.
func Tree(root string, maxDepth int) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", root)
	}

	var tree strings.Builder
	tree.WriteString(filepath.Base(root) + "/\n")

	// Single worker: the callback appends to one builder and the listing
	// must come out in directory order.
	conf := fastwalk.Config{Follow: false, Sort: fastwalk.SortLexical, NumWorkers: 1}
	err = fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil || p == root {
			return nil
		}

		relPath, _ := filepath.Rel(root, p)
		depth := len(strings.Split(relPath, string(os.PathSeparator))) - 1
		if maxDepth > 0 && depth >= maxDepth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		indent := strings.Repeat("  ", depth+1)
		name := filepath.Base(p)
		if d.IsDir() {
			tree.WriteString(indent + name + "/\n")
		} else {
			tree.WriteString(indent + name + "\n")
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walk %s: %w", root, err)
	}

	return tree.String(), nil
}

// GlobStatic enumerates built frontend assets matching pattern, relative to
// the static-assets directory. Patterns use doublestar syntax, so "**/*.js"
// finds every built script regardless of nesting.
func (l *Layout) GlobStatic(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(l.StaticDir(), pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	rel := make([]string, 0, len(matches))
	for _, match := range matches {
		if r, err := filepath.Rel(l.StaticDir(), match); err == nil {
			rel = append(rel, r)
		}
	}
	sort.Strings(rel)
	return rel, nil
}
