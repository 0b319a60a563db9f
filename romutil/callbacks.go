package romutil

// Stage identifies a step of the identification pipeline.
type Stage string

// Pipeline stages, reported in this order by every Parse:
//
//	"decrypt"  - obfuscation marker checked and, if present, removed
//	"validate" - size gate and structural flags
//	"classify" - digest lookup, header pattern and version
//	"checksum" - checksum validated
//	"complete" - Info is populated
const (
	StageDecrypt  Stage = "decrypt"
	StageValidate Stage = "validate"
	StageClassify Stage = "classify"
	StageChecksum Stage = "checksum"
	StageComplete Stage = "complete"
)

// StageCallback is called as the pipeline enters each stage.
// Implementations should return quickly.
//
// Example:
//
//	p := romutil.New(romutil.WithStageCallback(func(s romutil.Stage) {
//	    fmt.Println("stage:", s)
//	}))
type StageCallback func(Stage)

// Logger is an optional logging interface that can be provided to the parser.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	p := romutil.New(romutil.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
