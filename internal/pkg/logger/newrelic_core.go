package logger

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap/zapcore"
)

// newRelicCore forwards entries to New Relic as log events
type newRelicCore struct {
	zapcore.LevelEnabler
	nrApp   *newrelic.Application
	service string
	fields  []zapcore.Field
}

func newNewRelicCore(nrApp *newrelic.Application, level zapcore.LevelEnabler, service string) zapcore.Core {
	return &newRelicCore{LevelEnabler: level, nrApp: nrApp, service: service}
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field(nil), c.fields...), fields...)
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	if c.service != "" {
		enc.Fields["service"] = c.service
	}
	enc.Fields["caller"] = entry.Caller.TrimmedPath()
	if entry.Stack != "" {
		enc.Fields["stacktrace"] = entry.Stack
	}

	c.nrApp.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: enc.Fields,
	})
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}
