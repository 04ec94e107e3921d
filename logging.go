package hotspot

import "log"

// Logger is the injected logging collaborator. The toggle sequence emits
// severity-tagged lines through it; logging failures never affect the
// toggle result.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Notifier is the injected notification collaborator. It receives a
// title/message pair on successful enable and disable; the returned
// state of the notification is never consumed.
type Notifier interface {
	Notify(title, message string)
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// NopLogger returns a Logger that discards everything
func NopLogger() Logger {
	return nopLogger{}
}

// nopNotifier discards all notifications
type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}

// NopNotifier returns a Notifier that discards everything
func NopNotifier() Notifier {
	return nopNotifier{}
}

// stdLogger adapts a standard library *log.Logger to the Logger interface
type stdLogger struct {
	l     *log.Logger
	debug bool
}

// StdLogger wraps a *log.Logger. Debug lines are dropped unless debug
// is set.
func StdLogger(l *log.Logger, debug bool) Logger {
	return &stdLogger{l: l, debug: debug}
}

func (s *stdLogger) Debugf(format string, args ...any) {
	if s.debug {
		s.l.Printf("DEBUG "+format, args...)
	}
}

func (s *stdLogger) Infof(format string, args ...any) {
	s.l.Printf("INFO  "+format, args...)
}

func (s *stdLogger) Warnf(format string, args ...any) {
	s.l.Printf("WARN  "+format, args...)
}

func (s *stdLogger) Errorf(format string, args ...any) {
	s.l.Printf("ERROR "+format, args...)
}

// logNotifier reports notifications through a Logger. Useful on hosts
// without a native notification surface.
type logNotifier struct {
	log Logger
}

// LogNotifier returns a Notifier that writes title/message pairs to log
func LogNotifier(log Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(title, message string) {
	n.log.Infof("%s: %s", title, message)
}
