// Package pathindex resolves bare filenames to absolute repository paths.
//
// The index is a cached mapping from filename (or repo-relative path) to
// repo-relative path, optionally persisted as path-index.yaml at the repo
// root. Entries may go stale after file moves; a recursive filesystem
// search repairs them on demand.
package pathindex

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"gopkg.in/yaml.v3"

	"labctl/internal/domain"
)

// Index is an explicitly injected path cache. It is not safe for
// concurrent use; labctl is single-threaded by design.
type Index struct {
	repoRoot string
	entries  map[string]string
	loaded   bool
}

// Ensure Index implements domain.PathResolver.
var _ domain.PathResolver = (*Index)(nil)

// New creates an Index rooted at the repository root. The manifest is
// loaded lazily on first use.
func New(repoRoot string) *Index {
	return &Index{
		repoRoot: repoRoot,
		entries:  make(map[string]string),
	}
}

// manifestPath returns the location of path-index.yaml.
func (i *Index) manifestPath() string {
	return filepath.Join(i.repoRoot, domain.PathIndexFileName)
}

// load reads the manifest if present. A missing manifest is an empty index.
func (i *Index) load() {
	if i.loaded {
		return
	}
	i.loaded = true

	data, err := os.ReadFile(i.manifestPath())
	if err != nil {
		return
	}
	entries := make(map[string]string)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return
	}
	i.entries = entries
}

// Resolve returns the absolute path for name. A cached entry is verified
// against the filesystem; a stale or missing entry falls back to a
// recursive search from the repo root, and a successful search is cached.
// A miss returns false, never an error.
func (i *Index) Resolve(name string) (string, bool) {
	i.load()

	if rel, ok := i.entries[name]; ok {
		abs := filepath.Join(i.repoRoot, filepath.FromSlash(rel))
		if _, err := os.Stat(abs); err == nil {
			return abs, true
		}
	}

	rel, ok := i.search(name)
	if !ok {
		return "", false
	}
	i.entries[name] = rel
	return filepath.Join(i.repoRoot, filepath.FromSlash(rel)), true
}

// search walks the repository looking for name as a base name or as a
// repo-relative path. Dot-directories (.git and friends) are skipped.
func (i *Index) search(name string) (string, bool) {
	want := filepath.ToSlash(name)
	var found string

	_ = filepath.WalkDir(i.repoRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are simply skipped
		}
		if d.IsDir() {
			if path != i.repoRoot && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(i.repoRoot, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.Name() == name || rel == want {
			found = rel
			return fs.SkipAll
		}
		return nil
	})

	return found, found != ""
}

// Save writes the cache back to path-index.yaml with sorted keys.
func (i *Index) Save() error {
	i.load()

	data, err := yaml.Marshal(i.entries)
	if err != nil {
		return fmt.Errorf("marshal path index: %w", err)
	}
	if err := os.WriteFile(i.manifestPath(), data, 0o644); err != nil { //nolint:gosec // manifest is shared repo metadata
		return fmt.Errorf("write path index: %w", err)
	}
	return nil
}

// Ensure Index implements domain.PathIndexWriter.
var _ domain.PathIndexWriter = (*Index)(nil)

// Update regenerates the index from the git-tracked file list and persists
// it. Every entry value, joined to the repo root, names a tracked file.
func (i *Index) Update(opts domain.IndexUpdateOptions) error {
	repo, err := gogit.PlainOpen(i.repoRoot)
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return fmt.Errorf("read git index: %w", err)
	}

	entries := make(map[string]string)
	for _, entry := range idx.Entries {
		rel := entry.Name // already slash-separated
		if rel == domain.PathIndexFileName {
			continue
		}
		if !included(rel, opts) {
			continue
		}
		entries[rel] = rel
	}

	i.entries = entries
	i.loaded = true
	return i.Save()
}

func included(rel string, opts domain.IndexUpdateOptions) bool {
	if len(opts.ScanDirs) == 0 && len(opts.RootFiles) == 0 {
		return true
	}
	for _, f := range opts.RootFiles {
		if rel == f {
			return true
		}
	}
	for _, dir := range opts.ScanDirs {
		if strings.HasPrefix(rel, strings.TrimSuffix(dir, "/")+"/") {
			return true
		}
	}
	return false
}
