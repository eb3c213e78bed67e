package gemini

import (
	"context"

	"github.com/skarvsladd/wikisite"
	"google.golang.org/genai"
)

// Ensure ImageGenerator implements wikisite.ImageGenerator at compile time.
var _ wikisite.ImageGenerator = (*ImageGenerator)(nil)

// ImageGenerator creates hero images with Imagen.
type ImageGenerator struct {
	client *genai.Client
	model  string
}

// NewImageGenerator creates a new ImageGenerator. An empty model selects
// DefaultImageModel.
func NewImageGenerator(client *genai.Client, model string) *ImageGenerator {
	if model == "" {
		model = DefaultImageModel
	}
	return &ImageGenerator{client: client, model: model}
}

// GenerateImage requests exactly one 16:9 image.
func (g *ImageGenerator) GenerateImage(ctx context.Context, prompt string) (*wikisite.Image, error) {
	if prompt == "" {
		return nil, wikisite.Errorf(wikisite.EINVALID, "image prompt required")
	}

	resp, err := g.client.Models.GenerateImages(ctx, g.model, prompt, BuildImageConfig())
	if err != nil {
		return nil, wikisite.Errorf(wikisite.EGENERATE, "failed to generate image: %v", err)
	}
	if resp == nil || len(resp.GeneratedImages) == 0 ||
		resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, wikisite.Errorf(wikisite.EGENERATE, "image model returned no image")
	}

	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	return &wikisite.Image{Data: img.ImageBytes, MIMEType: mime}, nil
}

// BuildImageConfig returns the image request settings: one JPEG at 16:9.
func BuildImageConfig() *genai.GenerateImagesConfig {
	return &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    "16:9",
	}
}
