package logging

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"strings"
)

// ChiLogWriter forwards chi's text request log lines to logrus at debug level
type ChiLogWriter struct {
}

func (lw *ChiLogWriter) Print(a ...interface{}) {
	if len(a) == 1 {
		msg := strings.TrimSpace(fmt.Sprint(a[0]))
		logrus.Debug(msg)
	} else if len(a) > 1 {
		logrus.Debugf(fmt.Sprintf("%s", a[0]), a[1:]...)
	}
}
