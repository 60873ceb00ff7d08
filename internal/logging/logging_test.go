package logging

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) {
	TestingT(t)
}

type LoggingSuite struct{}

var _ = Suite(&LoggingSuite{})

func (s *LoggingSuite) TestGetLogLevel(c *C) {
	opts := LogOptions{}
	c.Assert(opts.GetLogLevel(), Equals, DefaultLogLevel)

	// case doesn't matter with log options
	opts[LevelOpt] = "DeBuG"
	c.Assert(opts.GetLogLevel(), Equals, logrus.DebugLevel)

	opts[LevelOpt] = "Invalid"
	c.Assert(opts.GetLogLevel(), Equals, DefaultLogLevel)
}

func (s *LoggingSuite) TestGetLogFormat(c *C) {
	opts := LogOptions{}
	c.Assert(opts.GetLogFormat(), Equals, DefaultLogFormat)

	opts[FormatOpt] = "JsOn"
	c.Assert(opts.GetLogFormat(), Equals, LogFormatJSON)

	opts[FormatOpt] = "Invalid"
	c.Assert(opts.GetLogFormat(), Equals, DefaultLogFormat)
}

func (s *LoggingSuite) TestSetLogFormat(c *C) {
	oldFormatter := DefaultLogger.Formatter
	defer DefaultLogger.SetFormatter(oldFormatter)

	SetLogFormat(LogFormatJSON)
	c.Assert(reflect.TypeOf(DefaultLogger.Formatter).String(), Equals, "*logrus.JSONFormatter")
	SetLogFormat(LogFormatText)
	c.Assert(reflect.TypeOf(DefaultLogger.Formatter).String(), Equals, "*logrus.TextFormatter")
}

func (s *LoggingSuite) TestSetupLogging(c *C) {
	oldLevel := DefaultLogger.GetLevel()
	oldFormatter := DefaultLogger.Formatter
	oldOut := DefaultLogger.Out
	defer func() {
		DefaultLogger.SetLevel(oldLevel)
		DefaultLogger.SetFormatter(oldFormatter)
		DefaultLogger.SetOutput(oldOut)
	}()

	var buf bytes.Buffer
	SetupLogging(LogOptions{LevelOpt: "warning", FormatOpt: "json"}, &buf)
	c.Assert(DefaultLogger.GetLevel(), Equals, logrus.WarnLevel)

	DefaultLogger.Info("hidden")
	DefaultLogger.WithField("subsys", "test").Warn("shown")
	c.Assert(bytes.Contains(buf.Bytes(), []byte("hidden")), Equals, false)
	c.Assert(bytes.Contains(buf.Bytes(), []byte(`"subsys":"test"`)), Equals, true)
}
