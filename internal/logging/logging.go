package logging

import (
	"io"
	"os"

	gologging "github.com/op/go-logging"
)

const format = `%{time:2006-01-02 15:04:05.000} %{level:.5s} %{module:-9s} %{message}`

// Init receives the log level as a string (DEBUG, INFO, WARNING, ERROR...)
// and installs a leveled stdout backend for every module logger.
func Init(logLevel string) error {
	return InitWithWriter(os.Stdout, logLevel)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(w io.Writer, logLevel string) error {
	baseBackend := gologging.NewLogBackend(w, "", 0)
	backendFormatter := gologging.NewBackendFormatter(baseBackend, gologging.MustStringFormatter(format))

	backendLeveled := gologging.AddModuleLevel(backendFormatter)
	level, err := gologging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(level, "")

	gologging.SetBackend(backendLeveled)
	return nil
}
