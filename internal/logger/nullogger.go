package logger

var _ Logger = NullLogger{}

// NullLogger discards everything. Components fall back to it when no logger
// is supplied, which keeps tests quiet.
type NullLogger struct{}

func NewNullLogger() NullLogger { return NullLogger{} }

func (NullLogger) Info(string, map[string]interface{})  {}
func (NullLogger) Warn(string, map[string]interface{})  {}
func (NullLogger) Error(error, map[string]interface{})  {}
func (NullLogger) Fatal(error, map[string]interface{})  {}
func (NullLogger) Debug(string, map[string]interface{}) {}
func (NullLogger) SetLevel(Level)                       {}
