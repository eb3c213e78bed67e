// Package openai implements the wikisite model collaborators on the OpenAI
// API: article cleaning and site generation over chat completions with a
// JSON schema response format, and DALL-E 3 hero images.
package openai

import (
	"context"
	"encoding/base64"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/skarvsladd/wikisite"
)

// Default models.
const (
	DefaultCleanModel = goopenai.GPT4oMini
	DefaultSiteModel  = goopenai.GPT4o
	DefaultImageModel = goopenai.CreateImageModelDallE3
)

// NewClient creates an OpenAI client. A non-empty baseURL overrides the
// public endpoint, which is how tests and compatible gateways are reached.
func NewClient(apiKey, baseURL string) (*goopenai.Client, error) {
	if apiKey == "" {
		return nil, wikisite.Errorf(wikisite.EINVALID, "OpenAI API key required")
	}
	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return goopenai.NewClientWithConfig(config), nil
}

// Cleaner removes citation markers and navigation remnants from article text.
type Cleaner struct {
	client *goopenai.Client
	model  string
}

var _ wikisite.Cleaner = (*Cleaner)(nil)

// NewCleaner creates a new Cleaner. An empty model selects DefaultCleanModel.
func NewCleaner(client *goopenai.Client, model string) *Cleaner {
	if model == "" {
		model = DefaultCleanModel
	}
	return &Cleaner{client: client, model: model}
}

// Clean returns the cleaned prose for raw article text.
func (c *Cleaner) Clean(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", wikisite.Errorf(wikisite.EEXTRACT, "no article text to clean")
	}

	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages:    userMessages(wikisite.BuildCleanPrompt(text)),
	})
	if err != nil {
		return "", wikisite.Errorf(wikisite.EEXTRACT, "failed to clean article text: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", wikisite.Errorf(wikisite.EEXTRACT, "failed to clean article text: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

// SiteGenerator asks a chat model for a complete HTML document in a JSON
// envelope.
type SiteGenerator struct {
	client *goopenai.Client
	model  string
}

var _ wikisite.SiteGenerator = (*SiteGenerator)(nil)

// NewSiteGenerator creates a new SiteGenerator. An empty model selects
// DefaultSiteModel.
func NewSiteGenerator(client *goopenai.Client, model string) *SiteGenerator {
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

	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:          g.model,
		Messages:       userMessages(prompt),
		ResponseFormat: BuildSiteResponseFormat(),
	})
	if err != nil {
		return "", wikisite.Errorf(wikisite.EGENERATE, "Failed to generate website code with OpenAI. Please check your API key and prompt. (%v)", err)
	}
	if len(resp.Choices) == 0 {
		return "", wikisite.Errorf(wikisite.EGENERATE, "AI response did not contain valid HTML code")
	}

	return wikisite.ParseSiteResponse(resp.Choices[0].Message.Content)
}

// BuildSiteResponseFormat returns the strict JSON schema response format
// with a single html_code string field.
func BuildSiteResponseFormat() *goopenai.ChatCompletionResponseFormat {
	return &goopenai.ChatCompletionResponseFormat{
		Type: goopenai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &goopenai.ChatCompletionResponseFormatJSONSchema{
			Name:   "website",
			Strict: true,
			Schema: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					wikisite.SiteResponseField: {
						Type:        jsonschema.String,
						Description: wikisite.SiteResponseDescription,
					},
				},
				Required:             []string{wikisite.SiteResponseField},
				AdditionalProperties: false,
			},
		},
	}
}

// ImageGenerator creates hero images with DALL-E 3.
type ImageGenerator struct {
	client *goopenai.Client
	model  string
}

var _ wikisite.ImageGenerator = (*ImageGenerator)(nil)

// NewImageGenerator creates a new ImageGenerator. An empty model selects
// DefaultImageModel.
func NewImageGenerator(client *goopenai.Client, model string) *ImageGenerator {
	if model == "" {
		model = DefaultImageModel
	}
	return &ImageGenerator{client: client, model: model}
}

// GenerateImage requests exactly one wide image as base64 PNG.
func (g *ImageGenerator) GenerateImage(ctx context.Context, prompt string) (*wikisite.Image, error) {
	if prompt == "" {
		return nil, wikisite.Errorf(wikisite.EINVALID, "image prompt required")
	}

	resp, err := g.client.CreateImage(ctx, BuildImageRequest(g.model, prompt))
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EGENERATE, "failed to generate image: %v", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, wikisite.Errorf(wikisite.EGENERATE, "image model returned no image")
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EGENERATE, "image model returned invalid data: %v", err)
	}
	return &wikisite.Image{Data: data, MIMEType: "image/png"}, nil
}

// BuildImageRequest returns the image request for one landscape image.
// DALL-E 3 has no 16:9 size; 1792x1024 is the closest.
func BuildImageRequest(model, prompt string) goopenai.ImageRequest {
	return goopenai.ImageRequest{
		Prompt:         prompt,
		Model:          model,
		N:              1,
		Size:           goopenai.CreateImageSize1792x1024,
		ResponseFormat: goopenai.CreateImageResponseFormatB64JSON,
	}
}

func userMessages(prompt string) []goopenai.ChatCompletionMessage {
	return []goopenai.ChatCompletionMessage{{
		Role:    goopenai.ChatMessageRoleUser,
		Content: prompt,
	}}
}
