package llm

// ModelTier represents the complexity/capability level of a model.
type ModelTier string

const (
	// TierStandard is for question generation.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for the full-transcript evaluation.
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the screening agent.
type Config struct {
	Models       map[ModelTier]string
	Temperatures map[ModelTier]float32
}

// DefaultConfig returns the default Gemini configuration. Question
// generation runs warmer than evaluation so interviews don't repeat
// themselves; scoring stays near-deterministic.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperatures: map[ModelTier]float32{
			TierStandard: 0.6,
			TierAdvanced: 0.3,
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

// Temperature returns the sampling temperature for a tier.
func (c *Config) Temperature(tier ModelTier) float32 {
	if temp, ok := c.Temperatures[tier]; ok {
		return temp
	}
	return 0.3
}

// WithModel returns a new Config overriding the model for one tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models))
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Models: models, Temperatures: c.Temperatures}
}
