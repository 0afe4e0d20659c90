package config

// Color modes accepted in settings files.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds user preferences read from YAML files. They shape how the
// tool reports, never what it searches.
type Settings struct {
	Color   string `yaml:"color" json:"color,omitempty"`
	Verbose *bool  `yaml:"verbose" json:"verbose,omitempty"`
	LogFile string `yaml:"log_file" json:"log_file,omitempty"`
}

// IsVerbose reports whether verbose diagnostics were requested.
func (s Settings) IsVerbose() bool { return s.Verbose != nil && *s.Verbose }
