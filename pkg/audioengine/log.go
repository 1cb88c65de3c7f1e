package audioengine

import (
	"io"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[hdx-mod] ", log.LstdFlags)

// SetLogOutput redirects the decoder's diagnostics.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func debugf(format string, args ...any) {
	logger.Printf(format, args...)
}
