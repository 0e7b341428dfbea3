package cursortheme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrThemeNotFound is returned by Load when no icons were found under the
// requested theme name or any of its inherited ancestors.
var ErrThemeNotFound = errors.New("cursor theme not found")

const (
	indexFile    = "index.theme"
	xcursorsDir  = "cursors"
	scalableDir  = "cursors_scalable"
	metadataFile = "metadata.json"
)

// Theme is a resolved cursor theme: a mapping from shape name ("wait",
// "left_ptr", ...) to a shared icon handle. Shape names discovered as
// symlinks alias the same *Icon as their target. A Theme is immutable after
// Load and safe for concurrent reads.
type Theme struct {
	name  string
	cache map[string]*Icon
}

// Load resolves the named theme across the XDG search path (SearchDirs),
// following its Inherits chain, and returns the consolidated theme.
// It returns ErrThemeNotFound when no icons exist under the name anywhere.
func Load(name string) (*Theme, error) {
	return LoadFromDirs(name, SearchDirs())
}

// LoadFromDirs is Load with an explicit list of search roots, ordered by
// decreasing precedence. Shapes found under an earlier root shadow the same
// shape under later roots and under inherited themes.
func LoadFromDirs(name string, dirs []string) (*Theme, error) {
	cache := make(map[string]*Icon)
	discover(name, dirs, cache)
	if len(cache) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return &Theme{name: name, cache: cache}, nil
}

// Name returns the theme name Load was called with.
func (t *Theme) Name() string { return t.name }

// Icon looks up a shape by name. The returned handle is shared between
// aliased shape names.
func (t *Theme) Icon(shape string) (*Icon, bool) {
	icon, ok := t.cache[shape]
	return icon, ok
}

// Shapes returns the sorted list of shape names the theme provides,
// aliases included.
func (t *Theme) Shapes() []string {
	shapes := make([]string, 0, len(t.cache))
	for shape := range t.cache {
		shapes = append(shapes, shape)
	}
	sort.Strings(shapes)
	return shapes
}

// discover walks the theme inheritance chain with an explicit worklist and
// fills the cache. Each popped theme name is searched across every root in
// order; the first Inherits declaration seen for that name is pushed after
// all roots were scanned, so inherited themes never shadow the themes that
// inherit them. A visited set bounds cyclic Inherits chains.
func discover(name string, dirs []string, cache map[string]*Icon) {
	stack := []string{name}
	visited := map[string]struct{}{name: {}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		inherits := ""
		for _, root := range dirs {
			themeDir := filepath.Join(root, current)
			if !isDir(themeDir) {
				continue
			}

			// A root contributes either scalable SVG icons or legacy
			// Xcursor files, never both.
			if scalable := filepath.Join(themeDir, scalableDir); isDir(scalable) {
				scanCursors(scalable, cache, newSVGIcon)
			} else if xcursors := filepath.Join(themeDir, xcursorsDir); isDir(xcursors) {
				scanCursors(xcursors, cache, newXcursorIcon)
			}

			if inherits == "" {
				if parent, ok := themeInherits(filepath.Join(themeDir, indexFile)); ok {
					inherits = parent
				}
			}
		}

		if inherits == "" {
			continue
		}
		if _, seen := visited[inherits]; seen {
			pkgLog.Debug().Str("theme", current).Str("inherits", inherits).
				Msg("ignoring cyclic theme inheritance")
			continue
		}
		visited[inherits] = struct{}{}
		stack = append(stack, inherits)
	}
}

// scanCursors enumerates one cursor directory and inserts every shape it
// holds, first writer wins. Regular entries are processed before symlinks so
// that a symlink to a sibling shape finds its target already cached; the
// alias then shares the target's *Icon. Symlinks whose canonical target
// lives outside the scanned directory are rejected.
func scanCursors(dir string, cache map[string]*Icon, construct func(path string) *Icon) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		pkgLog.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable cursor directory")
		return
	}

	var symlinks []fs.DirEntry
	for _, entry := range entries {
		if entry.Type()&fs.ModeSymlink != 0 {
			symlinks = append(symlinks, entry)
			continue
		}
		shape := entry.Name()
		if _, ok := cache[shape]; ok {
			continue
		}
		cache[shape] = construct(filepath.Join(dir, shape))
	}

	if len(symlinks) == 0 {
		return
	}
	canonDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		canonDir = filepath.Clean(dir)
	}

	for _, entry := range symlinks {
		shape := entry.Name()
		if _, ok := cache[shape]; ok {
			continue
		}

		target, err := os.Readlink(filepath.Join(dir, shape))
		if err != nil {
			continue
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, target)
		}
		resolved, err := filepath.EvalSymlinks(target)
		if err != nil {
			continue
		}
		if filepath.Dir(resolved) != canonDir {
			pkgLog.Debug().Str("shape", shape).Str("target", resolved).
				Msg("symlink escapes cursor directory")
			continue
		}

		// A target not yet cached (dangling, or shadowed away) is skipped
		// for good; it is not retried on later scans.
		if icon, ok := cache[filepath.Base(resolved)]; ok {
			cache[shape] = icon
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
