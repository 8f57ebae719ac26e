package out

import (
	"fmt"

	assistout "inkwell/internal/modules/assist/port/out"
	"inkwell/internal/platform/config"
)

// NewTransformer builds the provider named in config. Provider "none"
// yields nil and the service reports transforms as unavailable.
func NewTransformer(cfg config.Config) (assistout.TextTransformer, error) {
	switch cfg.AI.Provider {
	case "ollama":
		return NewOllamaTransformer(cfg.AI.OllamaURL, cfg.AI.OllamaModel), nil
	case "plugin":
		return NewPluginTransformer(NewFileManifestStore(cfg.PluginsPath), NewGRPCHost()), nil
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.AI.Provider)
	}
}
