package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// New builds the provider selected by llm.provider. It returns ErrDisabled
// when llm.disable is set or no provider is configured.
func New(ctx context.Context, config *viper.Viper, log *logrus.Logger) (Provider, error) {
	if config == nil || config.GetBool("llm.disable") {
		return nil, ErrDisabled
	}

	var provider Provider
	switch name := strings.ToLower(config.GetString("llm.provider")); name {
	case "openai":
		provider = NewOpenAIClient(
			config.GetString("llm.openai.api_key"),
			config.GetString("llm.openai.model"),
			config.GetString("llm.openai.base_url"),
		)
	case "gemini":
		gemini, err := NewGeminiClient(ctx,
			config.GetString("llm.gemini.api_key"),
			config.GetString("llm.gemini.model"),
		)
		if err != nil {
			return nil, err
		}
		provider = gemini
	case "", "none":
		return nil, ErrDisabled
	default:
		return nil, fmt.Errorf("unknown llm provider %q", name)
	}

	cfg := DefaultResilientConfig()
	cfg.Log = log
	return NewResilientProvider(provider, cfg), nil
}
