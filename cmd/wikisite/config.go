package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skarvsladd/wikisite"
	whttp "github.com/skarvsladd/wikisite/http"
	"github.com/spf13/viper"
)

// Providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds settings read from the config file and the environment.
// Command-line flags are applied on top with CLI.Apply.
type Config struct {
	Provider      string        `mapstructure:"provider"`
	GeminiAPIKey  string        `mapstructure:"gemini_api_key"`
	OpenAIAPIKey  string        `mapstructure:"openai_api_key"`
	OpenAIBaseURL string        `mapstructure:"openai_base_url"`
	CleanModel    string        `mapstructure:"clean_model"`
	SiteModel     string        `mapstructure:"site_model"`
	ImageModel    string        `mapstructure:"image_model"`
	NoImage       bool          `mapstructure:"no_image"`
	CountTokens   bool          `mapstructure:"count_tokens"`
	UserAgent     string        `mapstructure:"user_agent"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	FetchRPS      float64       `mapstructure:"fetch_rps"`
	Addr          string        `mapstructure:"addr"`
}

// LoadConfig reads configuration from an optional file and the environment.
// With an empty path, wikisite.{yaml,json,toml} is looked up in the working
// directory and the user config directory; a missing file is not an error.
// Environment variables use the WIKISITE_ prefix, except the API keys which
// also accept GEMINI_API_KEY, API_KEY and OPENAI_API_KEY.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("provider", ProviderGemini)
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_base_url", "")
	v.SetDefault("clean_model", "")
	v.SetDefault("site_model", "")
	v.SetDefault("image_model", "")
	v.SetDefault("no_image", false)
	v.SetDefault("count_tokens", false)
	v.SetDefault("user_agent", whttp.DefaultUserAgent)
	v.SetDefault("fetch_timeout", whttp.DefaultFetchTimeout)
	v.SetDefault("fetch_rps", 0)
	v.SetDefault("addr", ":8080")

	v.SetEnvPrefix("wikisite")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("gemini_api_key", "WIKISITE_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY")
	_ = v.BindEnv("openai_api_key", "WIKISITE_OPENAI_API_KEY", "OPENAI_API_KEY")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wikisite")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wikisite"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, wikisite.Errorf(wikisite.EINVALID, "error reading config file: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, wikisite.Errorf(wikisite.EINVALID, "unable to decode config: %v", err)
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	return &cfg, nil
}
