package logger

import (
	"log"
	"os"
)

var (
	Info  *log.Logger
	Error *log.Logger
	HTTP  *log.Logger
)

// Setup initializes the named loggers. Must run before anything logs.
func Setup() {
	Info = log.New(os.Stdout, "[INFO] ", log.LstdFlags|log.Lmsgprefix)
	Error = log.New(os.Stderr, "[ERROR] ", log.LstdFlags|log.Lmsgprefix)
	HTTP = log.New(os.Stdout, "[HTTP] ", log.LstdFlags|log.Lmsgprefix)
}
