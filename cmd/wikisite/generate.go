package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skarvsladd/wikisite"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	design, err := c.Design()
	if err != nil {
		return report(deps.Stderr, err)
	}

	site, err := deps.Builder.BuildSite(deps.Ctx, wikisite.BuildRequest{
		URL:    c.URL,
		Design: design,
		Progress: func(s wikisite.Stage) {
			fmt.Fprintln(deps.Stderr, s)
		},
	})
	if err != nil {
		return report(deps.Stderr, err)
	}

	switch {
	case c.HTML:
		fmt.Fprint(deps.Stdout, site.HTML)
	case c.Dir != "":
		paths, err := deps.NewWriter(c.Dir).WriteSite(deps.Ctx, site)
		if err != nil {
			return report(deps.Stderr, err)
		}
		for _, p := range paths {
			fmt.Fprintf(deps.Stdout, "Wrote %s\n", p)
		}
	default:
		if err := c.writeArchive(deps, site); err != nil {
			return report(deps.Stderr, err)
		}
		fmt.Fprintf(deps.Stdout, "Saved %q to %s\n", site.Title, c.Out)
	}

	if c.Screenshot != "" {
		if err := c.writeScreenshot(deps, site); err != nil {
			return report(deps.Stderr, err)
		}
		fmt.Fprintf(deps.Stderr, "Preview saved to %s\n", c.Screenshot)
	}
	return nil
}

// Design resolves the command's flags into a validated design.
func (c *GenerateCmd) Design() (wikisite.Design, error) {
	d := wikisite.DefaultDesign()

	switch {
	case c.HTML && c.Dir != "":
		return d, wikisite.Errorf(wikisite.EINVALID, "use either --html or --dir, not both")
	case c.Palette != "" && len(c.Color) > 0:
		return d, wikisite.Errorf(wikisite.EINVALID, "use either --palette or --color, not both")
	case c.Palette != "":
		data, err := os.ReadFile(c.Palette)
		if err != nil {
			return d, wikisite.Errorf(wikisite.EINVALID, "could not read palette file: %v", err)
		}
		if d.Palette, err = wikisite.ParsePalette(filepath.Base(c.Palette), data); err != nil {
			return d, err
		}
	case len(c.Color) > 0:
		d.Palette = wikisite.Palette(c.Color)
	}

	var err error
	if d.Framework, err = wikisite.ParseFramework(c.Framework); err != nil {
		return d, err
	}
	if d.Depth, err = wikisite.ParseDepth(c.Depth); err != nil {
		return d, err
	}
	if c.HeadingFont != "" {
		if d.Fonts.Heading, err = wikisite.FindFont(c.HeadingFont); err != nil {
			return d, err
		}
	}
	if c.BodyFont != "" {
		if d.Fonts.Body, err = wikisite.FindFont(c.BodyFont); err != nil {
			return d, err
		}
	}
	return d, d.Validate()
}

func (c *GenerateCmd) writeArchive(deps *Dependencies, site *wikisite.Site) (err error) {
	f, err := os.Create(c.Out)
	if err != nil {
		return wikisite.Errorf(wikisite.EPACKAGE, "could not create %s: %v", c.Out, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = wikisite.Errorf(wikisite.EPACKAGE, "could not write %s: %v", c.Out, cerr)
		}
	}()
	return deps.Packager.Package(f, site)
}

func (c *GenerateCmd) writeScreenshot(deps *Dependencies, site *wikisite.Site) (err error) {
	p, err := deps.NewPreviewer()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = wikisite.Errorf(wikisite.EPREVIEW, "could not stop preview browser: %v", cerr)
		}
	}()

	img, err := p.Preview(deps.Ctx, site.HTML)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Screenshot, img, 0o644); err != nil {
		return wikisite.Errorf(wikisite.EPREVIEW, "could not write %s: %v", c.Screenshot, err)
	}
	return nil
}
