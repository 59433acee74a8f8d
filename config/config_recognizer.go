package config

import (
	"errors"
	"strings"
	"time"

	"github.com/scriptor-ai/scriptor/pkg/otel"
	"github.com/scriptor-ai/scriptor/pkg/provider"
	"github.com/scriptor-ai/scriptor/pkg/provider/anthropic"
	"github.com/scriptor-ai/scriptor/pkg/provider/bedrock"
	"github.com/scriptor-ai/scriptor/pkg/provider/google"
	"github.com/scriptor-ai/scriptor/pkg/provider/openai"
	"github.com/scriptor-ai/scriptor/pkg/recognizer"
)

func (cfg *Config) RegisterRecognizer(id string, client *recognizer.Client) {
	if cfg.recognizers == nil {
		cfg.recognizers = make(map[string]*recognizer.Client)
	}

	if _, ok := cfg.recognizers[""]; !ok {
		cfg.recognizers[""] = client
	}

	cfg.recognizers[id] = client
}

func (cfg *Config) Recognizer(id string) (*recognizer.Client, error) {
	if cfg.recognizers != nil {
		if c, ok := cfg.recognizers[id]; ok {
			return c, nil
		}
	}

	return nil, errors.New("recognizer not found: " + id)
}

// RecognizerConfigured reports whether any recognition engine is registered.
func (cfg *Config) RecognizerConfigured() bool {
	return len(cfg.recognizers) > 0
}

type recognizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`

	Prompt  string `yaml:"prompt"`
	Timeout string `yaml:"timeout"`
}

func (cfg *Config) registerRecognizers(f *configFile) error {
	if f.Recognizers.IsZero() {
		return nil
	}

	var configs map[string]recognizerConfig

	if err := f.Recognizers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Recognizers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		p, err := createRecognizer(config)

		if err != nil {
			return err
		}

		if _, ok := p.(otel.Recognizer); !ok {
			p = otel.NewRecognizer(strings.ToLower(config.Type), config.Model, p)
		}

		var options []recognizer.Option

		if config.Prompt != "" {
			options = append(options, recognizer.WithPrompt(config.Prompt))
		}

		if config.Timeout != "" {
			timeout, err := time.ParseDuration(config.Timeout)

			if err != nil {
				return err
			}

			options = append(options, recognizer.WithTimeout(timeout))
		}

		cfg.RegisterRecognizer(id, recognizer.New(p, options...))
	}

	return nil
}

func createRecognizer(cfg recognizerConfig) (provider.Recognizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "google", "gemini":
		var options []google.Option

		if cfg.Token != "" {
			options = append(options, google.WithToken(cfg.Token))
		}

		return google.NewRecognizer(cfg.Model, options...)

	case "openai":
		var options []openai.Option

		if cfg.Token != "" {
			options = append(options, openai.WithToken(cfg.Token))
		}

		return openai.NewRecognizer(cfg.URL, cfg.Model, options...)

	case "anthropic":
		var options []anthropic.Option

		if cfg.Token != "" {
			options = append(options, anthropic.WithToken(cfg.Token))
		}

		return anthropic.NewRecognizer(cfg.URL, cfg.Model, options...)

	case "bedrock":
		return bedrock.NewRecognizer(cfg.Model)

	default:
		return nil, errors.New("invalid recognizer type: " + cfg.Type)
	}
}
