package main

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	log "github.com/sirupsen/logrus"
)

type ScanSettings struct {
	Mode           string `yaml:"mode"`
	Input          string `yaml:"input"`
	Output         string `yaml:"output"`
	Capacity       int    `yaml:"capacity"`
	ReadBuffer     int    `yaml:"readBuffer"`
	FlushThreshold int    `yaml:"flushThreshold"`
	Filter         string `yaml:"filter"`
	Wide           bool   `yaml:"wide"`
	SkipMalformed  bool   `yaml:"skipMalformed"`
	LogLevel       string `yaml:"logLevel"`
	JSON           bool   `yaml:"json"`
	Summary        bool   `yaml:"summary"`
	NoColor        bool   `yaml:"noColor"`
}

func defaultSettings() ScanSettings {
	return ScanSettings{
		Mode:           string(commandTokens),
		Input:          stdio,
		Output:         stdio,
		Capacity:       defaultBufferCapacity,
		ReadBuffer:     defaultReadBufferSize,
		FlushThreshold: defaultFlushThreshold,
		LogLevel:       "info",
	}
}

// loadSettings reads a YAML settings file on top of the defaults.
func loadSettings(path string) (ScanSettings, error) {
	settings := defaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, newConfigError("couldn't read settings file %q: %v", path, err)
	}
	if err := parseSettings(data, &settings); err != nil {
		return settings, err
	}
	return settings, nil
}

func parseSettings(data []byte, settings *ScanSettings) error {
	if err := yaml.Unmarshal(data, settings); err != nil {
		return newConfigError("invalid settings: %v", err)
	}
	return nil
}

func (s ScanSettings) validate() error {
	if _, err := parseCommandCode(s.Mode); err != nil {
		return err
	}
	if s.Capacity < 1 {
		return newConfigError("buffer capacity must be positive, given %v", s.Capacity)
	}
	if s.ReadBuffer < 1 {
		return newConfigError("read buffer size must be positive, given %v", s.ReadBuffer)
	}
	if s.FlushThreshold < 1 {
		return newConfigError("flush threshold must be positive, given %v", s.FlushThreshold)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return newConfigError("invalid logging level %q", s.LogLevel)
	}
	if strings.TrimSpace(s.Input) == "" || strings.TrimSpace(s.Output) == "" {
		return newConfigError("input and output paths can't be blank")
	}
	return nil
}

func (s ScanSettings) fields() log.Fields {
	return log.Fields{
		"mode":     s.Mode,
		"input":    s.Input,
		"output":   s.Output,
		"capacity": s.Capacity,
		"filter":   s.Filter,
		"wide":     s.Wide,
	}
}
