package main

import (
	"os"

	"github.com/op/go-logging"
	"github.com/shini4i/fixture-gen/cmd/fixture-gen/command"
	"github.com/shini4i/fixture-gen/internal/app"
)

var version = "local"

var log = logging.MustGetLogger("fixture-gen")

func loggingInit(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{color}%{time:15:04:05} %{level:.4s}%{color:reset} %{message}`)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
	logging.SetLevel(level, "")
}

func runApp(cfg app.Config) error {
	application, err := app.New(cfg, app.Dependencies{Logger: log})
	if err != nil {
		return err
	}

	return application.Run()
}

func main() {
	err := command.Execute(command.Options{
		Version: version,
		RunApp:  runApp,
		InitLogging: func(debug bool) {
			level := logging.INFO
			if debug {
				level = logging.DEBUG
			}
			loggingInit(level)
		},
	}, nil)

	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
