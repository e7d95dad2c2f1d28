package config

// DefaultConfig returns the default run configuration: naive Bayes,
// pass-1 threshold 0.3, pass-2 threshold 0.05, two-pass and opportunistic
// fill both enabled.
func DefaultConfig() *Config {
	return &Config{
		Classifier:        "naivebayes",
		Pass1Threshold:    0.3,
		Pass2Threshold:    0.05,
		TwoPass:           true,
		OpportunisticFill: true,
	}
}
