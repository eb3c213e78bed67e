package wikisite

import (
	"regexp"
	"strings"
)

// Heading is one entry of an article outline.
type Heading struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

var (
	headingRe = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.+?)(?:[ \t]+#+)?[ \t]*$`)
	fenceRe   = regexp.MustCompile("(?s)```.*?```")
)

// Outline returns the ATX headings of a markdown document in order.
// Headings inside fenced code blocks are ignored.
func Outline(markdown string) []Heading {
	matches := headingRe.FindAllStringSubmatch(fenceRe.ReplaceAllString(markdown, ""), -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		title := strings.TrimSpace(m[2])
		if title == "" {
			continue
		}
		headings = append(headings, Heading{Level: len(m[1]), Title: title})
	}
	return headings
}

// TopLevel counts headings at the shallowest level present.
func TopLevel(headings []Heading) int {
	minLevel, n := 7, 0
	for _, h := range headings {
		switch {
		case h.Level < minLevel:
			minLevel, n = h.Level, 1
		case h.Level == minLevel:
			n++
		}
	}
	return n
}
