package project

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
	gitignore "github.com/sabhiram/go-gitignore"
)

// Rules is an immutable snapshot of the subtrees a project excludes from
// indexing. Excluded files remain reachable by direct access.
type Rules struct {
	root     string
	dirs     []string
	patterns []string
	ignore   *gitignore.GitIgnore
}

// NewRules builds a rule set. Relative entries in dirs are taken relative to
// root; patterns are doublestar globs over the root-relative slash path.
func NewRules(root string, dirs, patterns []string, ignore *gitignore.GitIgnore) *Rules {
	r := &Rules{root: root, ignore: ignore}
	for _, d := range dirs {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if !filepath.IsAbs(d) {
			if root == "" {
				continue
			}
			d = filepath.Join(root, d)
		}
		r.dirs = append(r.dirs, filepath.Clean(d))
	}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r.patterns = append(r.patterns, filepath.ToSlash(p))
	}
	return r
}

// Dirs returns the absolute excluded directories.
func (r *Rules) Dirs() []string {
	out := make([]string, len(r.dirs))
	copy(out, r.dirs)
	return out
}

// Match reports whether absPath lies inside an excluded area.
func (r *Rules) Match(absPath string) bool {
	if r == nil || absPath == "" {
		return false
	}
	absPath = filepath.Clean(absPath)

	for _, d := range r.dirs {
		if isWithin(absPath, d) {
			return true
		}
	}

	if r.root == "" || (len(r.patterns) == 0 && r.ignore == nil) {
		return false
	}
	rel, err := filepath.Rel(r.root, absPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	rel = filepath.ToSlash(rel)

	// A directory pattern excludes everything below it, so the path and each
	// of its ancestors are candidates.
	for _, candidate := range ancestors(rel) {
		for _, p := range r.patterns {
			if ok, err := doublestar.Match(p, candidate); err == nil && ok {
				return true
			}
		}
		if r.ignore != nil && r.ignore.MatchesPath(candidate) {
			return true
		}
	}
	return false
}

func isWithin(path, dir string) bool {
	if path == dir {
		return true
	}
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return strings.HasPrefix(path, dir)
}

// ancestors returns rel followed by each parent directory, e.g.
// "a/b/c.txt" -> ["a/b/c.txt", "a/b", "a"].
func ancestors(rel string) []string {
	out := []string{rel}
	for {
		i := strings.LastIndex(rel, "/")
		if i <= 0 {
			return out
		}
		rel = rel[:i]
		out = append(out, rel)
	}
}

// ValidatePattern reports whether p is a well-formed pattern. Each segment
// must be a valid path.Match pattern; "**" segments are always accepted.
func ValidatePattern(p string) error {
	for _, seg := range strings.Split(filepath.ToSlash(p), "/") {
		if seg == "**" {
			continue
		}
		if _, err := path.Match(seg, ""); err != nil {
			return err
		}
	}
	return nil
}
