package anthropic

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/scriptor-ai/scriptor/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Recognizer = (*Recognizer)(nil)

type Recognizer struct {
	*Config
	messages anthropic.MessageService
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
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (r *Recognizer) Recognize(ctx context.Context, instruction string, image provider.File, options *provider.RecognizeOptions) (*provider.Recognition, error) {
	if options == nil {
		options = new(provider.RecognizeOptions)
	}

	switch image.ContentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		break

	default:
		return nil, errors.New("unsupported content type")
	}

	content := base64.StdEncoding.EncodeToString(image.Content)

	blocks := []anthropic.ContentBlockParamUnion{
		anthropic.NewTextBlock(instruction),
		anthropic.NewImageBlock(anthropic.Base64ImageSourceParam{
			Data:      content,
			MediaType: anthropic.Base64ImageSourceMediaType(image.ContentType),
		}),
	}

	req := anthropic.MessageNewParams{
		Model: anthropic.Model(r.model),

		MaxTokens: 8192,

		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	message, err := r.messages.New(ctx, req)

	if err != nil {
		return nil, err
	}

	var text string

	for _, block := range message.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += variant.Text
		}
	}

	return &provider.Recognition{
		ID:    message.ID,
		Model: r.model,

		Text: text,

		Usage: toUsage(message.Usage),
	}, nil
}

func toUsage(usage anthropic.Usage) *provider.Usage {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(usage.InputTokens),
		OutputTokens: int(usage.OutputTokens),
	}
}
