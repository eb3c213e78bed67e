// Package zip packages generated sites as downloadable zip archives.
package zip

import (
	"archive/zip"
	"io"
	"time"

	"github.com/skarvsladd/wikisite"
)

// ArchiveName is the suggested file name for a packaged site.
const ArchiveName = "ai-generated-website.zip"

// Ensure Packager implements wikisite.Packager.
var _ wikisite.Packager = (*Packager)(nil)

// Packager writes a site as a zip archive.
type Packager struct {
	// Now sets entry modification times. Defaults to time.Now.
	Now func() time.Time
}

// NewPackager creates a new Packager.
func NewPackager() *Packager {
	return &Packager{Now: time.Now}
}

// Package writes index.html, plus README.md for React sites, to w.
func (p *Packager) Package(w io.Writer, site *wikisite.Site) error {
	if site == nil || site.HTML == "" {
		return wikisite.Errorf(wikisite.EPACKAGE, "no generated website to package")
	}

	zw := zip.NewWriter(w)
	for _, f := range site.Files() {
		if err := p.add(zw, f.Name, f.Content); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return wikisite.Errorf(wikisite.EPACKAGE, "failed to finalize archive: %v", err)
	}
	return nil
}

func (p *Packager) add(zw *zip.Writer, name, content string) error {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	f, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: now(),
	})
	if err != nil {
		return wikisite.Errorf(wikisite.EPACKAGE, "failed to add %s: %v", name, err)
	}
	if _, err := io.WriteString(f, content); err != nil {
		return wikisite.Errorf(wikisite.EPACKAGE, "failed to write %s: %v", name, err)
	}
	return nil
}
