package bedrock

import (
	"context"
	"errors"

	"github.com/scriptor-ai/scriptor/pkg/provider"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

var _ provider.Recognizer = (*Recognizer)(nil)

type Recognizer struct {
	*Config

	client *bedrockruntime.Client
}

func NewRecognizer(model string, options ...Option) (*Recognizer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	config, err := config.LoadDefaultConfig(context.Background())

	if err != nil {
		return nil, err
	}

	client := bedrockruntime.NewFromConfig(config)

	return &Recognizer{
		Config: cfg,

		client: client,
	}, nil
}

func (r *Recognizer) Recognize(ctx context.Context, instruction string, image provider.File, options *provider.RecognizeOptions) (*provider.Recognition, error) {
	if options == nil {
		options = new(provider.RecognizeOptions)
	}

	format, ok := convertImageFormat(image.ContentType)

	if !ok {
		return nil, errors.New("unsupported image format")
	}

	message := types.Message{
		Role: types.ConversationRoleUser,

		Content: []types.ContentBlock{
			&types.ContentBlockMemberText{
				Value: instruction,
			},
			&types.ContentBlockMemberImage{
				Value: types.ImageBlock{
					Format: format,
					Source: &types.ImageSourceMemberBytes{
						Value: image.Content,
					},
				},
			},
		},
	}

	req := &bedrockruntime.ConverseInput{
		ModelId: aws.String(r.model),

		Messages: []types.Message{message},
	}

	inference := &types.InferenceConfiguration{}

	if options.MaxTokens != nil {
		inference.MaxTokens = aws.Int32(int32(*options.MaxTokens))
	}

	if options.Temperature != nil {
		inference.Temperature = aws.Float32(*options.Temperature)
	}

	req.InferenceConfig = inference

	resp, err := r.client.Converse(ctx, req)

	if err != nil {
		return nil, err
	}

	return &provider.Recognition{
		ID:    uuid.NewString(),
		Model: r.model,

		Text: toText(resp.Output),

		Usage: toUsage(resp.Usage),
	}, nil
}

func convertImageFormat(mime string) (types.ImageFormat, bool) {
	switch mime {
	case "image/png":
		return types.ImageFormatPng, true

	case "image/jpeg":
		return types.ImageFormatJpeg, true

	case "image/gif":
		return types.ImageFormatGif, true

	case "image/webp":
		return types.ImageFormatWebp, true
	}

	return "", false
}

func toText(val types.ConverseOutput) string {
	message, ok := val.(*types.ConverseOutputMemberMessage)

	if !ok {
		return ""
	}

	var text string

	for _, b := range message.Value.Content {
		if block, ok := b.(*types.ContentBlockMemberText); ok {
			text += block.Value
		}
	}

	return text
}

func toUsage(val *types.TokenUsage) *provider.Usage {
	if val == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(aws.ToInt32(val.InputTokens)),
		OutputTokens: int(aws.ToInt32(val.OutputTokens)),
	}
}
