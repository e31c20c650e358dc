package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to tuning file (YAML)")
	flagDebug    = flag.Bool("debug", false, "Enable debug overlay and debug logging")
	flagLogLevel = flag.String("log-level", "", "Log level: debug, info, warn, error")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file as well")
	flagLevel    = flag.String("level", "", "Level file inside the embedded assets")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the settings.
func applyFlags(s *Settings) {
	if *flagDebug {
		s.Debug.Overlay = true
		s.Debug.LogLevel = "debug"
	}
	if *flagLogLevel != "" {
		s.Debug.LogLevel = *flagLogLevel
	}
	if *flagLogFile != "" {
		s.Debug.LogFile = *flagLogFile
	}
	if *flagLevel != "" {
		s.Game.Level = *flagLevel
	}
}
