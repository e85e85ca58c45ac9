package logger

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
)

const debugEnv = "FIELDMETA_DEBUG"

var logger = zap.NewNop().Sugar()

// Init builds the global logger, debug level is enabled by the argument or by the FIELDMETA_DEBUG environment variable.
func Init(debug bool) {
	if !debug {
		envDebug := strings.ToLower(os.Getenv(debugEnv))
		debug = len(envDebug) > 0 && !(envDebug == "disable" || envDebug == "false")
	}

	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	l, err := config.Build()
	if err != nil {
		log.Fatal(err)
	}

	zap.ReplaceGlobals(l)
	logger = zap.S()
}

func Sync() {
	_ = logger.Sync()
}

func Debugw(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

func Debugf(template string, args ...interface{}) {
	logger.Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	logger.Infof(template, args...)
}
