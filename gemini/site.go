package gemini

import (
	"context"

	"github.com/skarvsladd/wikisite"
	"google.golang.org/genai"
)

// Ensure SiteGenerator implements wikisite.SiteGenerator at compile time.
var _ wikisite.SiteGenerator = (*SiteGenerator)(nil)

// SiteGenerator asks Gemini for a complete HTML document in a JSON envelope.
type SiteGenerator struct {
	client *genai.Client
	model  string
}

// NewSiteGenerator creates a new SiteGenerator. An empty model selects
// DefaultSiteModel.
func NewSiteGenerator(client *genai.Client, model string) *SiteGenerator {
	if model == "" {
		model = DefaultSiteModel
	}
	return &SiteGenerator{client: client, model: model}
}

// GenerateSite sends the site prompt and returns the generated document.
func (g *SiteGenerator) GenerateSite(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", wikisite.Errorf(wikisite.EINVALID, "site prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		userContent(prompt),
		BuildSiteConfig(),
	)
	if err != nil {
		return "", wikisite.Errorf(wikisite.EGENERATE, "Failed to generate website code with Gemini. Please check your API key and prompt. (%v)", err)
	}
	if result == nil {
		return "", wikisite.Errorf(wikisite.EGENERATE, "gemini returned nil result")
	}

	return wikisite.ParseSiteResponse(result.Text())
}

// BuildSiteConfig returns the GenerateContentConfig requesting a JSON object
// with a single html_code string field.
func BuildSiteConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				wikisite.SiteResponseField: {
					Type:        genai.TypeString,
					Description: wikisite.SiteResponseDescription,
				},
			},
			Required: []string{wikisite.SiteResponseField},
		},
	}
}
