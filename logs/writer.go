package logs

import (
	"io"
	"os"
)

// Writer receives text log records. Records go to stderr unless LOX_LOG_FILE
// names a file to append to.
type Writer io.Writer

const LogFileEnv = "LOX_LOG_FILE"

func (Module) Writer() Writer {
	return openWriter(os.Getenv(LogFileEnv))
}

func openWriter(path string) Writer {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return os.Stderr
	}
	return f
}
