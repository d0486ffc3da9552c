package testutil

import (
	"flag"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// The testing package owns the standard flag set, so these carry an rsql. prefix.
var (
	logDir    = flag.String("rsql.log-dir", "", "`dir` for test logs (default: the package dir)")
	logLevel  = flag.String("rsql.log-level", "debug", "logrus level for test logs")
	logStderr = flag.Bool("rsql.log-stderr", false, "send test logs to standard error")
)

// SetupLogger sends the logrus standard logger to <pkg>_test.log, or to standard error
// with -rsql.log-stderr. Call it from TestMain after flag.Parse.
func SetupLogger(pkg string) error {
	ll, err := log.ParseLevel(*logLevel)
	if err != nil {
		return err
	}

	if !*logStderr {
		w, err := os.OpenFile(filepath.Join(*logDir, pkg+"_test.log"),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			return err
		}
		log.SetOutput(w)
	} else {
		log.SetOutput(os.Stderr)
	}
	log.SetLevel(ll)

	log.WithFields(log.Fields{
		"package": pkg,
		"pid":     os.Getpid(),
	}).Info("rsql tests starting")
	return nil
}
