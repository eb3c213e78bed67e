package wikisite

import "strings"

// Framework identifies the styling/runtime approach of the generated page.
type Framework string

// Supported output frameworks.
const (
	FrameworkTailwind Framework = "tailwind"
	FrameworkPlainCSS Framework = "css"
	FrameworkReact    Framework = "react"
)

// Frameworks lists the supported frameworks in display order.
var Frameworks = []Framework{FrameworkTailwind, FrameworkPlainCSS, FrameworkReact}

// Label returns the human-readable framework name.
func (f Framework) Label() string {
	switch f {
	case FrameworkTailwind:
		return "Tailwind CSS"
	case FrameworkPlainCSS:
		return "Plain CSS"
	case FrameworkReact:
		return "Lightweight React"
	}
	return string(f)
}

// ParseFramework converts a name or label into a Framework.
func ParseFramework(s string) (Framework, error) {
	s = strings.TrimSpace(s)
	for _, f := range Frameworks {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s, f.Label()) {
			return f, nil
		}
	}
	return "", Errorf(EINVALID, "unknown framework %q (want tailwind, css or react)", s)
}

// Depth controls how much of the article ends up on the page.
type Depth string

// Content depth levels.
const (
	DepthSummary       Depth = "summary"
	DepthMultiSection  Depth = "multi-section"
	DepthComprehensive Depth = "comprehensive"
)

// Depths lists the supported depths from shortest to longest.
var Depths = []Depth{DepthSummary, DepthMultiSection, DepthComprehensive}

// ParseDepth converts a name into a Depth.
func ParseDepth(s string) (Depth, error) {
	s = strings.TrimSpace(s)
	for _, d := range Depths {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", Errorf(EINVALID, "unknown content depth %q (want summary, multi-section or comprehensive)", s)
}

// Font is a web font from the static catalog.
type Font struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FontSelection holds the optional heading and body fonts.
type FontSelection struct {
	Heading *Font `json:"headingFont,omitempty"`
	Body    *Font `json:"bodyFont,omitempty"`
}

// Fonts is the catalog of selectable fonts.
var Fonts = []Font{
	{Name: "Roboto", URL: "https://fonts.googleapis.com/css2?family=Roboto:wght@400;700&display=swap"},
	{Name: "Open Sans", URL: "https://fonts.googleapis.com/css2?family=Open+Sans:wght@400;700&display=swap"},
	{Name: "Lato", URL: "https://fonts.googleapis.com/css2?family=Lato:wght@400;700&display=swap"},
	{Name: "Montserrat", URL: "https://fonts.googleapis.com/css2?family=Montserrat:wght@400;700&display=swap"},
	{Name: "Poppins", URL: "https://fonts.googleapis.com/css2?family=Poppins:wght@400;700&display=swap"},
	{Name: "Source Code Pro", URL: "https://fonts.googleapis.com/css2?family=Source+Code+Pro:wght@400;700&display=swap"},
	{Name: "Geist", URL: "https://cdn.jsdelivr.net/npm/geist@1/dist/fonts/geist-sans/geist-sans.css"},
}

// FindFont looks up a catalog font by name, ignoring case.
// Returns EINVALID if the font is not in the catalog.
func FindFont(name string) (*Font, error) {
	for i := range Fonts {
		if strings.EqualFold(Fonts[i].Name, strings.TrimSpace(name)) {
			f := Fonts[i]
			return &f, nil
		}
	}
	return nil, Errorf(EINVALID, "unknown font %q", name)
}

// Design is a snapshot of the user's design choices. It is passed by value
// into the generation pipeline and never mutated there.
type Design struct {
	Palette   Palette       `json:"palette"`
	Fonts     FontSelection `json:"fonts"`
	Framework Framework     `json:"framework"`
	Depth     Depth         `json:"depth"`
}

// DefaultDesign returns the design used when the user picks nothing.
func DefaultDesign() Design {
	return Design{
		Palette:   DefaultPalette(),
		Framework: FrameworkTailwind,
		Depth:     DepthMultiSection,
	}
}

// Validate returns an error if the design contains invalid fields.
func (d Design) Validate() error {
	if err := d.Palette.Validate(); err != nil {
		return err
	}
	if _, err := ParseFramework(string(d.Framework)); err != nil {
		return err
	}
	if _, err := ParseDepth(string(d.Depth)); err != nil {
		return err
	}
	return nil
}
