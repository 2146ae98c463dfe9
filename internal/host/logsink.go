package host

import (
	"strings"

	"github.com/charmbracelet/log"
)

// LogSink receives one formatted log line at a time.
type LogSink func(msg string)

var sink LogSink

// sinkWriter forwards log output to the current sink, dropping it when
// no sink is set.
type sinkWriter struct{}

func (w *sinkWriter) Write(p []byte) (int, error) {
	if sink != nil {
		sink(strings.TrimRight(string(p), "\n"))
	}
	return len(p), nil
}

// SetLogSink installs the host log capability. A nil sink silences logging.
func SetLogSink(s LogSink) {
	sink = s
}

// SetLogLevel sets the level of the shared chamber logger.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}
