package logs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Station-Manager/errors"
	"gopkg.in/yaml.v3"
)

// Config is the file/env representation of a Service's settings.
type Config struct {
	// Level is the minimum level name (trace, notice, debug, info, warn, warning,
	// error, fatal), in any case.
	Level string `yaml:"level" json:"level" validate:"omitempty,loglevel"`
	// Profile selects the level labels: standard (TRACE) or reduced (NOTICE).
	Profile string `yaml:"profile" json:"profile" validate:"omitempty,logprofile"`
	// OutputFile, when set, is opened in append mode and used as the primary output.
	OutputFile string `yaml:"output_file" json:"output_file" validate:"omitempty,max=4096"`
	// MuteStdStreams suppresses the standard error mirror of a redirected output.
	MuteStdStreams bool `yaml:"mute_std_streams" json:"mute_std_streams"`
	// SemaphoreName, when set, enables the named mutex during Initialize.
	SemaphoreName string `yaml:"semaphore_name" json:"semaphore_name" validate:"omitempty,max=252,excludesall=\\"`
	// SemaphoreDir holds the lock files backing named mutexes.
	SemaphoreDir string `yaml:"semaphore_dir" json:"semaphore_dir" validate:"omitempty,max=4096"`
}

// DefaultConfig returns the settings of a zero-value Service.
func DefaultConfig() Config {
	return Config{
		Level:   "trace",
		Profile: ProfileStandard.String(),
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or JSON (.json) config file and
// validates it. Fields absent from the file keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	const op errors.Op = "logs.LoadConfig"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigRead)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgConfigParse)
		}
	case ".json":
		if err = json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgConfigParse)
		}
	default:
		return nil, errors.New(op).Msg(errMsgConfigFormat)
	}

	if err = validateConfig(&cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return &cfg, nil
}
