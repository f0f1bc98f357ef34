package renderer

import (
	"fmt"
	"strings"

	"github.com/golang/glog"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// glogLogger implements core.Logger by forwarding to glog at info level
type glogLogger struct{}

// Printf logs one line. A trailing newline is dropped since glog adds its own.
func (gl glogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

// NewDefaultLogger creates a logger that writes through glog
func NewDefaultLogger() core.Logger {
	return glogLogger{}
}
