package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const logFileName = "software-properties-station.log"

// openLog is the log file attached by the last setupLogging call
var openLog *os.File

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, logFileName)
}

// setupLogging sends diagnostics to logFile. The console only receives them
// when verbose is set. Any previously opened log file is closed first.
func setupLogging(logger *logrus.Logger, console io.Writer, logFile string, verbose bool) error {
	CloseLog()

	level := logrus.InfoLevel
	var outputs []io.Writer
	if verbose {
		level = logrus.DebugLevel
		outputs = append(outputs, console)
	}
	logger.SetLevel(level)

	var openErr error
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			openErr = err
		} else {
			openLog = f
			outputs = append(outputs, f)
		}
	}

	switch len(outputs) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(outputs[0])
	default:
		logger.SetOutput(io.MultiWriter(outputs...))
	}

	return openErr
}

// CloseLog detaches and closes the log file and points the standard logger
// back at stderr. It is safe to call when no log file is open.
func CloseLog() {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)

	if openLog != nil {
		openLog.Close()
		openLog = nil
	}
}
