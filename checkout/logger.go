package checkout

import "time"

// Logger is satisfied by the echo/gommon logger.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// Metrics receives checkout counters. A nil Metrics records nothing.
type Metrics interface {
	OrderFinalized(status string)
	SideEffectFailed(effect string)
	Redirect(kind string, took time.Duration)
	SessionOpened()
	SessionClosed()
}

type nopMetrics struct{}

func (nopMetrics) OrderFinalized(string)          {}
func (nopMetrics) SideEffectFailed(string)        {}
func (nopMetrics) Redirect(string, time.Duration) {}
func (nopMetrics) SessionOpened()                 {}
func (nopMetrics) SessionClosed()                 {}
