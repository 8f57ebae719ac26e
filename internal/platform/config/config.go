package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme       = "dark"
	DefaultAIProvider  = "none"
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama3.2"
)

// AI holds the text-assist provider settings.
type AI struct {
	Provider    string `yaml:"provider"`
	OllamaURL   string `yaml:"ollama_url"`
	OllamaModel string `yaml:"ollama_model"`
}

// Config is the resolved runtime configuration for one vault.
type Config struct {
	VaultPath   string
	DBPath      string
	TodosPath   string
	LogPath     string
	PluginsPath string
	ExportsPath string
	Theme       string
	AI          AI
}

// fileConfig is the subset persisted in .inkwell/config.yaml.
type fileConfig struct {
	Theme string `yaml:"theme"`
	AI    AI     `yaml:"ai"`
}

// New resolves the configuration for vaultPath, layering defaults, the
// optional .inkwell/config.yaml, and INKWELL_* environment overrides.
// An empty vaultPath falls back to $INKWELL_VAULT, then the working directory.
func New(vaultPath string) (Config, error) {
	if vaultPath == "" {
		vaultPath = os.Getenv("INKWELL_VAULT")
	}
	if vaultPath == "" {
		vaultPath = "."
	}

	fc := fileConfig{
		Theme: DefaultTheme,
		AI: AI{
			Provider:    DefaultAIProvider,
			OllamaURL:   DefaultOllamaURL,
			OllamaModel: DefaultOllamaModel,
		},
	}
	raw, err := os.ReadFile(filepath.Join(vaultPath, ".inkwell", "config.yaml"))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}
	applyEnv(&fc)

	return Config{
		VaultPath:   vaultPath,
		DBPath:      filepath.Join(vaultPath, ".inkwell", "inkwell.db"),
		TodosPath:   filepath.Join(vaultPath, ".inkwell", "todos.json"),
		LogPath:     filepath.Join(vaultPath, ".inkwell", "logs", "inkwell.log"),
		PluginsPath: filepath.Join(vaultPath, "plugins"),
		ExportsPath: filepath.Join(vaultPath, "exports"),
		Theme:       fc.Theme,
		AI:          fc.AI,
	}, nil
}

// SaveTheme persists the theme choice back to config.yaml, keeping the
// other settings as currently resolved.
func SaveTheme(cfg Config, theme string) error {
	fc := fileConfig{Theme: theme, AI: cfg.AI}
	raw, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("marshal config.yaml: %w", err)
	}
	dir := filepath.Join(cfg.VaultPath, ".inkwell")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), raw, 0o644); err != nil {
		return fmt.Errorf("write config.yaml: %w", err)
	}
	return nil
}

func applyEnv(fc *fileConfig) {
	if v := os.Getenv("INKWELL_THEME"); v != "" {
		fc.Theme = v
	}
	if v := os.Getenv("INKWELL_AI_PROVIDER"); v != "" {
		fc.AI.Provider = v
	}
	if v := os.Getenv("INKWELL_OLLAMA_URL"); v != "" {
		fc.AI.OllamaURL = v
	}
	if v := os.Getenv("INKWELL_OLLAMA_MODEL"); v != "" {
		fc.AI.OllamaModel = v
	}
}
