package logs

import (
	"os"
	"strconv"

	"github.com/Station-Manager/errors"
	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfigEnv.
const (
	EnvLevel          = "LOGS_LEVEL"
	EnvProfile        = "LOGS_PROFILE"
	EnvOutputFile     = "LOGS_OUTPUT_FILE"
	EnvMuteStdStreams = "LOGS_MUTE_STD_STREAMS"
	EnvSemaphoreName  = "LOGS_SEMAPHORE_NAME"
	EnvSemaphoreDir   = "LOGS_SEMAPHORE_DIR"
)

// LoadConfigEnv builds a Config from LOGS_* variables. Values from the given
// .env files are used when the variable is not set in the process
// environment. The process environment is not modified.
func LoadConfigEnv(files ...string) (*Config, error) {
	const op errors.Op = "logs.LoadConfigEnv"

	fileVars := map[string]string{}
	if len(files) > 0 {
		vars, err := godotenv.Read(files...)
		if err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgEnvRead)
		}
		fileVars = vars
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	cfg := DefaultConfig()
	if v, ok := lookup(EnvLevel); ok {
		cfg.Level = v
	}
	if v, ok := lookup(EnvProfile); ok {
		cfg.Profile = v
	}
	if v, ok := lookup(EnvOutputFile); ok {
		cfg.OutputFile = v
	}
	if v, ok := lookup(EnvMuteStdStreams); ok {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
		}
		cfg.MuteStdStreams = mute
	}
	if v, ok := lookup(EnvSemaphoreName); ok {
		cfg.SemaphoreName = v
	}
	if v, ok := lookup(EnvSemaphoreDir); ok {
		cfg.SemaphoreDir = v
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return &cfg, nil
}
