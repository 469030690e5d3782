package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init and writes to stderr
// at info level until Init configures it.
var Log = logrus.New()

// Init configures the global logger from the environment.
//
// LOG_LEVEL selects the level (default "info"), LOG_FORMAT=json switches to the
// JSON formatter, anything else uses the coloured text formatter.
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput is Init with an explicit destination. The console viewer uses
// it to keep log lines off the terminal it is drawing on.
func InitWithOutput(out io.Writer) {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}
