package cursortheme

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	searchDirsOnce sync.Once
	searchDirs     []string
)

// SearchDirs returns the ordered list of root directories that Load searches
// for theme folders, user roots first. The list is computed from the
// environment once per process and reused afterwards; directories are not
// required to exist (existence is checked lazily per theme name).
//
// SearchDirs panics when neither $XDG_HOME nor $HOME is set. A host without a
// home directory cannot resolve user themes and is considered misconfigured.
func SearchDirs() []string {
	searchDirsOnce.Do(func() {
		searchDirs = computeSearchDirs()
	})

	dirs := make([]string, len(searchDirs))
	copy(dirs, searchDirs)
	return dirs
}

// computeSearchDirs builds the search order mandated by the XDG Base
// Directory and icon theme specifications:
//  1. $XDG_DATA_HOME/icons (default: ~/.local/share/icons)
//  2. ~/.icons
//  3. each entry of $XDG_DATA_DIRS joined with "icons"
//     (default: /usr/share/icons)
func computeSearchDirs() []string {
	home := os.Getenv("XDG_HOME")
	if home == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		panic("cursortheme: neither $XDG_HOME nor $HOME is set")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	dirs := []string{
		filepath.Join(dataHome, "icons"),
		filepath.Join(home, ".icons"),
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		return append(dirs, filepath.Join("/usr/share", "icons"))
	}

	for _, dir := range strings.Split(dataDirs, string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, "icons"))
	}
	return dirs
}
