package google

import (
	"context"
	"errors"
	"strings"

	"github.com/scriptor-ai/scriptor/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Recognizer = (*Recognizer)(nil)

type Recognizer struct {
	*Config
}

func NewRecognizer(model string, options ...Option) (*Recognizer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Recognizer{
		Config: cfg,
	}, nil
}

func (r *Recognizer) Recognize(ctx context.Context, instruction string, image provider.File, options *provider.RecognizeOptions) (*provider.Recognition, error) {
	if options == nil {
		options = new(provider.RecognizeOptions)
	}

	client, err := r.newClient(ctx)

	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(instruction),
		{
			InlineData: &genai.Blob{
				MIMEType: image.ContentType,
				Data:     image.Content,
			},
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "text/plain",
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = genai.Ptr(*options.Temperature)
	}

	resp, err := client.Models.GenerateContent(ctx, r.model, contents, config)

	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 {
		return nil, errors.New("no candidates returned")
	}

	var text strings.Builder

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	return &provider.Recognition{
		ID:    uuid.NewString(),
		Model: r.model,

		Text: text.String(),

		Usage: toUsage(resp.UsageMetadata),
	}, nil
}

func toUsage(metadata *genai.GenerateContentResponseUsageMetadata) *provider.Usage {
	if metadata == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokenCount),
		OutputTokens: int(metadata.CandidatesTokenCount),
	}
}
