package config

// Config is the inference run's configuration: classifier choice, the
// two-pass driver's density thresholds, and optional behavior toggles.
type Config struct {
	Classifier         string  `yaml:"classifier" mapstructure:"classifier"`
	Pass1Threshold     float64 `yaml:"pass1_threshold" mapstructure:"pass1_threshold"`
	Pass2Threshold     float64 `yaml:"pass2_threshold" mapstructure:"pass2_threshold"`
	TwoPass            bool    `yaml:"two_pass" mapstructure:"two_pass"`
	OpportunisticFill  bool    `yaml:"opportunistic_fill" mapstructure:"opportunistic_fill"`
	IdentifierOverride string  `yaml:"identifier_override" mapstructure:"identifier_override"`
	ScandataPath       string  `yaml:"scandata_path" mapstructure:"scandata_path"`
}
