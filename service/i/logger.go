package i

// Logger writes leveled, human readable log lines.
type Logger interface {
	Info(msg string)
	Error(msg string)
}
