package middleware

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Logger wraps a command action with structured logging of its outcome
func Logger(next cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		start := time.Now()

		err := next(c)

		entry := log.WithFields(log.Fields{
			"command": c.Command.FullName(),
			"latency": time.Since(start),
		})
		if exitErr, ok := err.(cli.ExitCoder); ok {
			entry = entry.WithField("exit_code", exitErr.ExitCode())
		}

		if err != nil {
			entry.Warn("Command failed")
		} else {
			entry.Debug("Command completed")
		}
		return err
	}
}
