package logs

import (
	"fmt"
	"strings"
)

// Level is a log severity. Levels are totally ordered; a record is written
// when its level is >= the service's minimum level.
type Level int32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// LevelNotice is the name the reduced profile uses for the lowest level.
const LevelNotice = LevelTrace

// Profile selects the label set used when rendering levels.
type Profile int32

const (
	// ProfileStandard labels the lowest level TRACE.
	ProfileStandard Profile = iota
	// ProfileReduced labels the lowest level NOTICE.
	ProfileReduced
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARNING", "ERROR", "FATAL"}

// Labels are fixed-width and centered; odd padding puts the extra space on the right.
var levelLabels = [...][6]string{
	ProfileStandard: {"  TRACE  ", "  DEBUG  ", "  INFO   ", " WARNING ", "  ERROR  ", "  FATAL  "},
	ProfileReduced:  {" NOTICE  ", "  DEBUG  ", "  INFO   ", " WARNING ", "  ERROR  ", "  FATAL  "},
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("LEVEL(%d)", int32(l))
	}
	return levelNames[l]
}

// Label returns the 9-character centered label for l under profile p.
func (l Level) Label(p Profile) string {
	if !l.Valid() {
		return emptyString
	}
	if p != ProfileReduced {
		p = ProfileStandard
	}
	return levelLabels[p][l]
}

// ParseLevel parses a level name. Matching is case-insensitive; "notice" is
// accepted for the lowest level and "warn" for warning.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "notice":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return LevelTrace, fmt.Errorf("unknown log level %q", s)
}

// ParseProfile parses a profile name ("standard" or "reduced").
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case emptyString, "standard":
		return ProfileStandard, nil
	case "reduced":
		return ProfileReduced, nil
	}
	return ProfileStandard, fmt.Errorf("unknown level profile %q", s)
}

func (p Profile) String() string {
	if p == ProfileReduced {
		return "reduced"
	}
	return "standard"
}
