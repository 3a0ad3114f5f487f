package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/justradojko/intellij-community/pkg/logger"
)

// RootProvider returns the base directory of the currently open project.
type RootProvider interface {
	Root() (string, bool)
}

// ExclusionChecker reports whether an absolute path lies under an excluded
// subtree of the project.
type ExclusionChecker interface {
	IsExcluded(absPath string) bool
}

// Options describes where the project lives and what it excludes.
type Options struct {
	Root            string
	ExcludedDirs    []string
	ExcludePatterns []string
	UseGitignore    bool
	// Descriptor overrides the default <root>/.locator/project.yaml.
	Descriptor string
}

// Model is the open project as seen by the locator. Root and rules can be
// swapped at runtime (reload, project switch), so reads go through a RWMutex.
//
// Thread Safety: Model is safe for concurrent use.
type Model struct {
	mu       sync.RWMutex
	// reloadMu serializes Reload and SetRoot so a slow reload cannot
	// publish a root that has since been replaced.
	reloadMu sync.Mutex
	opts     Options
	root     string
	rules    *Rules
	logger   logger.Logger
}

var (
	_ RootProvider     = (*Model)(nil)
	_ ExclusionChecker = (*Model)(nil)
)

// NewModel builds a Model and loads its exclusion rules. An empty root means
// no project is open.
func NewModel(opts Options, log logger.Logger) (*Model, error) {
	if log == nil {
		log = logger.NewNop()
	}
	m := &Model{opts: opts, logger: log}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Root implements RootProvider.
func (m *Model) Root() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root, m.root != ""
}

// IsExcluded implements ExclusionChecker.
func (m *Model) IsExcluded(absPath string) bool {
	m.mu.RLock()
	rules := m.rules
	m.mu.RUnlock()
	return rules.Match(absPath)
}

// Options returns a copy of the options the model was built from.
func (m *Model) Options() Options {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.opts
}

// DescriptorPath returns the descriptor file consulted on reload, or "" when
// no project is open.
func (m *Model) DescriptorPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.descriptorPathLocked()
}

func (m *Model) descriptorPathLocked() string {
	if m.opts.Descriptor != "" {
		return m.opts.Descriptor
	}
	if m.root == "" {
		return ""
	}
	return DefaultDescriptorPath(m.root)
}

// SetRoot switches the model to another project root and reloads rules.
func (m *Model) SetRoot(root string) error {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	m.mu.Lock()
	prev := m.opts.Root
	m.opts.Root = root
	m.mu.Unlock()

	if err := m.reload(); err != nil {
		m.mu.Lock()
		m.opts.Root = prev
		m.mu.Unlock()
		return err
	}
	return nil
}

// Reload recomputes the root and exclusion rules from options, the project
// descriptor and, when enabled, the project's .gitignore.
func (m *Model) Reload() error {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()
	return m.reload()
}

func (m *Model) reload() error {
	m.mu.RLock()
	opts := m.opts
	m.mu.RUnlock()

	root := ""
	if opts.Root != "" {
		abs, err := filepath.Abs(opts.Root)
		if err != nil {
			return fmt.Errorf("invalid project root %q: %w", opts.Root, err)
		}
		root = filepath.Clean(abs)
	}

	dirs := append([]string(nil), opts.ExcludedDirs...)
	patterns := append([]string(nil), opts.ExcludePatterns...)

	descriptorPath := opts.Descriptor
	if descriptorPath == "" && root != "" {
		descriptorPath = DefaultDescriptorPath(root)
	}
	if descriptorPath != "" {
		d, err := LoadDescriptor(descriptorPath)
		if err != nil {
			return err
		}
		dirs = append(dirs, d.Excluded...)
		patterns = append(patterns, d.ExcludePatterns...)
	}

	var ignore *gitignore.GitIgnore
	if opts.UseGitignore && root != "" {
		gitignorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitignorePath); err == nil {
			ig, err := gitignore.CompileIgnoreFile(gitignorePath)
			if err != nil {
				m.logger.Warn("Failed to compile .gitignore; ignoring it", "path", gitignorePath, "error", err)
			} else {
				ignore = ig
			}
		}
	}

	rules := NewRules(root, dirs, patterns, ignore)

	m.mu.Lock()
	m.root = root
	m.rules = rules
	m.mu.Unlock()

	m.logger.Info("Project model loaded",
		"root", root,
		"excluded_dirs", len(rules.dirs),
		"exclude_patterns", len(rules.patterns),
		"gitignore", ignore != nil,
	)
	return nil
}
