package log

// Modes
const (
	ModeProduction = "production"
	ModeDebug      = "debug"
)

// Encodings
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// Levels
const (
	LevelDebug  = "debug"
	LevelInfo   = "info"
	LevelWarn   = "warn"
	LevelError  = "error"
	LevelDPanic = "dpanic"
	LevelPanic  = "panic"
	LevelFatal  = "fatal"
)

// TraceIDKey is the context key under which a request trace ID is stored.
type TraceIDKey struct{}
