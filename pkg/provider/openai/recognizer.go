package openai

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/scriptor-ai/scriptor/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var _ provider.Recognizer = (*Recognizer)(nil)

type Recognizer struct {
	*Config
	completions openai.ChatCompletionService
}

func NewRecognizer(url, model string, options ...Option) (*Recognizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Recognizer{
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
	}, nil
}

func (r *Recognizer) Recognize(ctx context.Context, instruction string, image provider.File, options *provider.RecognizeOptions) (*provider.Recognition, error) {
	if options == nil {
		options = new(provider.RecognizeOptions)
	}

	content := base64.StdEncoding.EncodeToString(image.Content)

	imageURL := openai.ChatCompletionContentPartImageImageURLParam{
		URL: "data:" + image.ContentType + ";base64," + content,
	}

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(instruction),
		openai.ImageContentPart(imageURL),
	}

	req := openai.ChatCompletionNewParams{
		Model: r.model,

		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(parts),
		},
	}

	if options.MaxTokens != nil {
		req.MaxTokens = openai.Int(int64(*options.MaxTokens))
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	completion, err := r.completions.New(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no completion returned")
	}

	return &provider.Recognition{
		ID:    completion.ID,
		Model: completion.Model,

		Text: completion.Choices[0].Message.Content,

		Usage: toUsage(completion.Usage),
	}, nil
}

func toUsage(usage openai.CompletionUsage) *provider.Usage {
	if usage.PromptTokens == 0 && usage.CompletionTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(usage.PromptTokens),
		OutputTokens: int(usage.CompletionTokens),
	}
}
