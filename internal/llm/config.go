// Package llm provides centralized LLM configuration and client abstractions
// for the interview agents. Only question generation and feedback synthesis
// talk to an LLM; the scoring pipeline never does.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short classifications, single-line rewrites
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: interview question generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: whole-interview feedback synthesis
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider, currently the only one wired.
const ProviderGemini Provider = "gemini"

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// Temperature applies to free-text generation (questions). JSON
	// generation always runs at a low temperature for parseable output.
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.7,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier's model overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models))
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Provider: c.Provider, Models: models, Temperature: c.Temperature}
}
