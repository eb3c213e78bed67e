package wikisite

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SiteResponseField is the single field the site model must return.
const SiteResponseField = "html_code"

// SiteResponseDescription describes SiteResponseField in response schemas.
const SiteResponseDescription = "The complete, single-file HTML code for the generated website."

// FooterText is the fixed footer every generated page carries.
const FooterText = "Generated with AI Web Page Generator - A Tool By Skarvsladd Inc."

// Framework instruction fragments.
const (
	tailwindInstructions = `Generate the code using Tailwind CSS. Use Tailwind CSS classes directly in the HTML for all styling. Do not write any custom CSS in a style block. The final output should be a single HTML file that includes the Tailwind CDN script: <script src="https://cdn.tailwindcss.com"></script>. Make sure to use the provided color palette in the Tailwind config or via arbitrary values. The font imports must be in the <head>.`
	plainCSSInstructions = `Generate all necessary CSS and include it within a single <style> tag in the <head> of the HTML file. The final output must be a single, self-contained HTML file. Do not use any external CSS frameworks. The font imports must be in the <head>.`
	reactInstructions    = `Generate a single, self-contained HTML file for a lightweight React application. This file must include CDN links for React, ReactDOM, and Babel in the <head>. All generated React components should be placed inside a single <script type="text/babel"> tag. Render the main App component into a div with id="root". Do not use JSX in separate files. All styling must be done with inline style objects or a style tag in the head. The font imports must be in the <head>.`
)

// FrameworkInstructions returns the instruction block for a framework.
func FrameworkInstructions(f Framework) string {
	switch f {
	case FrameworkTailwind:
		return tailwindInstructions
	case FrameworkPlainCSS:
		return plainCSSInstructions
	case FrameworkReact:
		return reactInstructions
	}
	return ""
}

// DepthInstructions returns the page-size wording for a content depth.
func DepthInstructions(d Depth) string {
	switch d {
	case DepthSummary:
		return "Generate a very concise, single-section landing page. It should be a brief summary of the topic. Keep it short and to the point."
	case DepthMultiSection:
		return "Generate a standard multi-section webpage with a hero, an introduction, 2-3 key topic sections, and a footer. This should feel like a well-rounded summary page."
	case DepthComprehensive:
		return "Generate a comprehensive and detailed webpage. Use the provided content to create multiple, in-depth sections covering the topic thoroughly. The structure should be deep, with headings and sub-headings, similar to a detailed article but formatted as a modern website."
	}
	return ""
}

// ColorInstructions returns the color specification for a palette.
func ColorInstructions(p Palette) string {
	r := p.Roles()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Use this color palette: %s. Please assign them semantically:\n", strings.Join(p, ", "))
	fmt.Fprintf(&sb, "- %s as the primary dark background.\n", r.Background)
	fmt.Fprintf(&sb, "- %s as the accent color for buttons, links, and highlights.\n", r.Accent)
	fmt.Fprintf(&sb, "- %s as the primary light text color.\n", r.Text)
	fmt.Fprintf(&sb, "- %s as a secondary, subtle text or border color.\n", r.Muted)
	fmt.Fprintf(&sb, "- %s as a secondary background color for cards or sections.", r.SecondaryBackground)
	return sb.String()
}

// FontInstructions returns the typography wording and the stylesheet links
// the page must import.
func FontInstructions(fonts FontSelection) (instructions string, imports []string) {
	seen := make(map[string]bool)
	for _, f := range []*Font{fonts.Heading, fonts.Body} {
		if f == nil {
			continue
		}
		link := fmt.Sprintf(`<link href="%s" rel="stylesheet">`, f.URL)
		if !seen[link] {
			seen[link] = true
			imports = append(imports, link)
		}
	}

	switch {
	case fonts.Heading != nil && fonts.Body != nil:
		instructions = fmt.Sprintf(`Use the font "%s" for all headings (h1, h2, h3, etc.) and "%s" for all body text (p, li, a, etc.). You must apply these fonts in the CSS.`, fonts.Heading.Name, fonts.Body.Name)
	case fonts.Heading != nil:
		instructions = fmt.Sprintf(`Use the font "%s" for all text.`, fonts.Heading.Name)
	case fonts.Body != nil:
		instructions = fmt.Sprintf(`Use the font "%s" for all text.`, fonts.Body.Name)
	default:
		instructions = "Use a standard sans-serif font like Arial or Helvetica."
	}
	return instructions, imports
}

// PlaceholderHTML returns the hero image placeholder the model is asked to emit.
// SpliceHeroImage later replaces it.
func PlaceholderHTML(p Palette) string {
	r := p.Roles()
	return fmt.Sprintf(`<div class="placeholder-image" style="height: 400px; background-color: %s; display:flex; align-items:center; justify-content:center; color:%s;">Hero Image Placeholder</div>`, r.SecondaryBackground, r.Muted)
}

// BuildSitePrompt assembles the site generation prompt from cleaned article
// text and a design snapshot. It performs no I/O.
func BuildSitePrompt(content, title string, d Design) string {
	fontInstructions, fontImports := FontInstructions(d.Fonts)

	var sb strings.Builder
	sb.WriteString("You are an expert web developer specializing in creating modern, responsive, and aesthetically pleasing websites.\n")
	sb.WriteString("Your task is to generate the complete code for a single-page website based on the provided content and design specifications.\n")
	sb.WriteString("The website should be dark-mode first, visually appealing, and well-structured.\n\n")

	sb.WriteString("**Content Specifications:**\n")
	fmt.Fprintf(&sb, "1. **Topic:** \"%s\"\n", title)
	fmt.Fprintf(&sb, "2. **Website Size:** %s\n", DepthInstructions(d.Depth))
	sb.WriteString("3. **Source Text:** You will be provided with cleaned text from a Wikipedia article. Use this to construct the website content.\n\n")
	sb.WriteString("--- START OF CONTENT ---\n")
	sb.WriteString(content)
	sb.WriteString("\n--- END OF CONTENT ---\n\n")

	sb.WriteString("**Design Specifications:**\n")
	fmt.Fprintf(&sb, "1. **Color Palette:** %s\n", ColorInstructions(d.Palette))
	fmt.Fprintf(&sb, "2. **Typography:** %s", fontInstructions)
	if len(fontImports) > 0 {
		fmt.Fprintf(&sb, " You MUST include the following import(s) in the HTML <head>: %s", strings.Join(fontImports, " "))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "3. **Framework:** %s\n\n", FrameworkInstructions(d.Framework))

	sb.WriteString("**Requirements:**\n")
	sb.WriteString("- The code must be in a single, complete HTML file.\n")
	sb.WriteString("- The page must be responsive and look good on both desktop and mobile devices.\n")
	fmt.Fprintf(&sb, "- Create a compelling hero section that includes the title \"%s\" and a brief, engaging summary.\n", title)
	fmt.Fprintf(&sb, "- Include a placeholder for a hero image: %s. This will be replaced later.\n", PlaceholderHTML(d.Palette))
	sb.WriteString("- Structure the remaining content into logical sections with clear headings based on the \"Website Size\" instruction.\n")
	fmt.Fprintf(&sb, "- Add a simple footer with the text %q.\n", FooterText)
	sb.WriteString("- The final HTML output should be clean, well-formatted, and ready to be rendered in a browser.\n")
	sb.WriteString("- Do not include any placeholder comments like \"<!-- your code here -->\". Generate the full, complete code.\n")
	return sb.String()
}

// BuildCleanPrompt asks the model to turn raw article text into clean prose.
func BuildCleanPrompt(raw string) string {
	var sb strings.Builder
	sb.WriteString("The following is the raw text from a Wikipedia article's HTML body.\n")
	sb.WriteString("Clean it up and extract the most important textual content.\n")
	sb.WriteString("Remove any remaining artifacts, navigation elements, citation markers (like [1], [2], etc.), or irrelevant text.\n")
	sb.WriteString("Focus on the main paragraphs, headings (h2, h3), and lists, and keep their structure.\n")
	sb.WriteString("Present the output as clean, readable text.\n\n")
	sb.WriteString("RAW TEXT:\n")
	sb.WriteString(raw)
	return sb.String()
}

// BuildImagePrompt describes the hero image to generate for an article.
func BuildImagePrompt(title string, p Palette) string {
	return fmt.Sprintf("A visually stunning and abstract representation of \"%s\". Digital art, high resolution, vibrant colors reflecting this palette: %s.", title, strings.Join(p, ", "))
}

// ParseSiteResponse extracts the HTML document from the site model's
// structured JSON response. A missing or empty field is EGENERATE.
func ParseSiteResponse(text string) (string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var result map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &result); err != nil {
		return "", Errorf(EGENERATE, "AI response was not valid JSON: %v", err)
	}
	html, _ := result[SiteResponseField].(string)
	if strings.TrimSpace(html) == "" {
		return "", Errorf(EGENERATE, "AI response did not contain valid HTML code")
	}
	return html, nil
}
