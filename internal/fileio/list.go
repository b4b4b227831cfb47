package fileio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ListFiles returns the regular files in dir as dir-joined paths, sorted.
// Symlinks to files are included; symlinked directories are not entered.
// The result is empty, never nil, when nothing matches.
func ListFiles(dir string, opts ...Option) ([]string, error) {
	const op = "list"
	o := newOptions(opts)
	abs, err := absPath(dir)
	if err != nil {
		return nil, pathError(op, dir, err)
	}
	fi, err := o.fs.Stat(abs)
	if err != nil {
		return nil, pathError(op, dir, err)
	}
	if !fi.IsDir() {
		return nil, pathError(op, dir, ErrNotDir)
	}

	var matcher gitignore.Matcher
	if o.gitignore {
		matcher, err = gitignoreMatcher(o.fs, abs)
		if err != nil {
			return nil, pathError(op, dir, err)
		}
	}

	rels, err := collectFiles(o, abs, nil, matcher)
	if err != nil {
		return nil, pathError(op, dir, err)
	}
	out := make([]string, 0, len(rels))
	for _, rel := range rels {
		out = append(out, filepath.Join(dir, rel))
	}
	sort.Strings(out)
	return out, nil
}

// gitignoreMatcher reads every .gitignore below root.
func gitignoreMatcher(bfs billy.Filesystem, root string) (gitignore.Matcher, error) {
	chrooted, err := bfs.Chroot(root)
	if err != nil {
		return nil, err
	}
	patterns, err := gitignore.ReadPatterns(chrooted, nil)
	if err != nil {
		return nil, err
	}
	return gitignore.NewMatcher(patterns), nil
}

// collectFiles returns paths relative to root for the files under root/comps.
func collectFiles(o options, root string, comps []string, matcher gitignore.Matcher) ([]string, error) {
	cur := filepath.Join(append([]string{root}, comps...)...)
	infos, err := o.fs.ReadDir(cur)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, info := range infos {
		name := info.Name()
		child := append(append([]string(nil), comps...), name)
		isDir := info.IsDir()

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := o.fs.Stat(filepath.Join(cur, name))
			if err != nil || target.IsDir() {
				continue
			}
			info = target
			isDir = false
		}

		if matcher != nil && matcher.Match(child, isDir) {
			continue
		}
		if isDir {
			if !o.recursive {
				continue
			}
			sub, err := collectFiles(o, root, child, matcher)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if o.extension != "" && !strings.HasSuffix(name, o.extension) {
			continue
		}
		files = append(files, filepath.Join(child...))
	}
	return files, nil
}
