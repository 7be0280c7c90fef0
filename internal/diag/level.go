package diag

// ErrorLevel defines how the producer raises a parse error.
type ErrorLevel uint8

const (
	// LevelFatal is an ordinary syntax error.
	LevelFatal ErrorLevel = iota
	// LevelArgument is raised by the producer as an argument error.
	LevelArgument
)

func (l ErrorLevel) String() string {
	switch l {
	case LevelFatal:
		return "fatal"
	case LevelArgument:
		return "argument"
	}
	return "UNKNOWN"
}

// WarningLevel defines the verbosity gate of a parse warning.
type WarningLevel uint8

const (
	// LevelDefault warnings are always reported.
	LevelDefault WarningLevel = iota
	// LevelVerbose warnings are reported only in verbose mode.
	LevelVerbose
)

func (l WarningLevel) String() string {
	switch l {
	case LevelDefault:
		return "default"
	case LevelVerbose:
		return "verbose"
	}
	return "UNKNOWN"
}
