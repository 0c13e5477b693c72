package errs

import (
	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

// Handle logs err together with its stack trace when one is attached, stop turns it into a panic.
func Handle(err error, stop bool) {
	if err == nil {
		return
	}

	var checkErr stackTracer
	if !errors.As(err, &checkErr) {
		if stop {
			logging.Panic(err)
		} else {
			logging.Error(err)
		}
		return
	}

	st := checkErr.StackTrace()
	if stop {
		logging.Panicf("%v\n%+v", err, st)
	} else {
		logging.Errorf("%v\n%+v", err, st)
	}
}
