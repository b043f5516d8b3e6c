// Package scheduler provides the background task loop used for periodic
// maintenance work such as exchange-rate refreshes.
package scheduler

import "errors"

var (
	ErrSchedulerAlreadyRunning = errors.New("scheduler is already running")
	ErrSchedulerNotRunning     = errors.New("scheduler is not running")
)
