// Package fs writes generated sites to the local filesystem.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/skarvsladd/wikisite"
)

// Ensure Writer implements wikisite.SiteWriter at compile time.
var _ wikisite.SiteWriter = (*Writer)(nil)

// Writer writes a site's files into a directory, creating it if needed.
// Only the site's own files are touched; anything else already in the
// directory is left alone. Each file is staged as a hidden temp file next
// to its target and renamed into place once all of them are written.
type Writer struct {
	dir string
}

// NewWriter creates a new Writer for the given output directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: filepath.Clean(dir)}
}

type staged struct {
	tmp   string
	final string
}

// WriteSite writes the site and returns the paths of the written files.
func (w *Writer) WriteSite(ctx context.Context, site *wikisite.Site) ([]string, error) {
	if site == nil || site.HTML == "" {
		return nil, wikisite.Errorf(wikisite.EPACKAGE, "no generated website to write")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if info, err := os.Stat(w.dir); err == nil && !info.IsDir() {
		return nil, wikisite.Errorf(wikisite.EPACKAGE, "%s exists and is not a directory", w.dir)
	}
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, wikisite.Errorf(wikisite.EPACKAGE, "could not create %s: %v", w.dir, err)
	}

	files := site.Files()
	stages := make([]staged, 0, len(files))
	cleanup := func() {
		for _, s := range stages {
			_ = os.Remove(s.tmp)
		}
	}

	for _, f := range files {
		tmp, err := w.stage(f)
		if err != nil {
			cleanup()
			return nil, err
		}
		stages = append(stages, staged{tmp: tmp, final: filepath.Join(w.dir, f.Name)})
	}

	paths := make([]string, 0, len(stages))
	for i, s := range stages {
		if err := os.Rename(s.tmp, s.final); err != nil {
			for _, rest := range stages[i:] {
				_ = os.Remove(rest.tmp)
			}
			return nil, wikisite.Errorf(wikisite.EPACKAGE, "could not write %s: %v", s.final, err)
		}
		paths = append(paths, s.final)
	}
	return paths, nil
}

// stage writes f to a temp file in the output directory and returns its path.
func (w *Writer) stage(f wikisite.SiteFile) (string, error) {
	tmp, err := os.CreateTemp(w.dir, "."+f.Name+".*.tmp")
	if err != nil {
		return "", wikisite.Errorf(wikisite.EPACKAGE, "could not write %s: %v", f.Name, err)
	}
	if _, err := tmp.WriteString(f.Content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", wikisite.Errorf(wikisite.EPACKAGE, "could not write %s: %v", f.Name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", wikisite.Errorf(wikisite.EPACKAGE, "could not write %s: %v", f.Name, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		_ = os.Remove(tmp.Name())
		return "", wikisite.Errorf(wikisite.EPACKAGE, "could not write %s: %v", f.Name, err)
	}
	return tmp.Name(), nil
}
