package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages (causes os.Exit(1))
	FatalLevel
	// PanicLevel for panic messages (causes panic)
	PanicLevel
)

// String returns the display name of the level. Names never exceed
// eight cells so they fit the level column without truncation.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "CRITICAL"
	case PanicLevel:
		return "PANIC"
	default:
		return "UNKNOWN"
	}
}

// StyleName returns the theme style used for the level label,
// e.g. "logging.level.warning".
func (l Level) StyleName() string {
	return "logging.level." + strings.ToLower(l.String())
}

// ParseLevel converts a level name to a Level. Unknown names map to
// InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG", "TRACE":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "FATAL", "CRITICAL":
		return FatalLevel
	case "PANIC":
		return PanicLevel
	default:
		return InfoLevel
	}
}

// Entry represents a log entry with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  []Field
	// Err, when set, is rendered as a traceback below the message.
	Err    error
	Caller CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// NewCallerInfo builds a CallerInfo from an absolute file path and line.
// An empty file yields an undefined CallerInfo.
func NewCallerInfo(file string, line int, function string) CallerInfo {
	if file == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  function,
		Defined:   true,
	}
}

var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	e.Err = nil
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Fields = e.Fields[:0]
	e.Time = time.Time{}
	e.Level = DebugLevel
	e.Message = ""
	e.Err = nil
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}
	return NewCallerInfo(file, line, funcName)
}
