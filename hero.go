package wikisite

import (
	"encoding/base64"
	"fmt"
	"html"
	"regexp"
)

// placeholderRe matches the hero placeholder block emitted by the model.
// Attributes after class are allowed since the prompt asks for an inline style.
var placeholderRe = regexp.MustCompile(`(?s)<div\s+class="placeholder-image[^"]*"[^>]*>.*?</div>`)

// HeroImage is the image spliced into the page's hero section.
type HeroImage struct {
	Src string
	Alt string
}

// ArticleHeroImage returns a hero image pointing at the article's own image.
func ArticleHeroImage(title, imageURL string) *HeroImage {
	return &HeroImage{
		Src: imageURL,
		Alt: "Primary image for " + title,
	}
}

// GeneratedHeroImage returns a hero image embedding generated bytes as a data URL.
func GeneratedHeroImage(title string, img *Image) *HeroImage {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	return &HeroImage{
		Src: fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img.Data)),
		Alt: "AI generated image for " + title,
	}
}

// Tag renders the image element.
func (h *HeroImage) Tag() string {
	return fmt.Sprintf(`<img src="%s" alt="%s" class="w-full h-full object-cover" />`,
		html.EscapeString(h.Src), html.EscapeString(h.Alt))
}

// SpliceHeroImage replaces the first placeholder block in doc with the hero
// image. If there is no placeholder, doc is returned unchanged.
func SpliceHeroImage(doc string, hero *HeroImage) string {
	if hero == nil {
		return doc
	}
	loc := placeholderRe.FindStringIndex(doc)
	if loc == nil {
		return doc
	}
	return doc[:loc[0]] + hero.Tag() + doc[loc[1]:]
}
