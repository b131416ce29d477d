// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"os"
	"relay-server/commons"
	"relay-server/db"
	"relay-server/handlers"
	"relay-server/messages"
	"relay-server/queue"
	"relay-server/rabbitmq"
	"relay-server/routes"
	"slices"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()

	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
			)
			return nil
		},
	}))
	debugMode := slices.Contains(os.Args[1:], "--debug")
	if debugMode {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())

	db.InitDB()
	if slices.Contains(os.Args[1:], "--migrate-db") {
		commons.Logger.Debug("--migrate-db flag detected, running migrations")
		db.MigrateDB()
	}

	maxLimit := messages.DefaultMaxLimit
	if v := commons.GetEnv("MESSAGES_MAX_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxLimit = n
		} else {
			commons.Logger.Warnf("Ignoring invalid MESSAGES_MAX_LIMIT %q", v)
		}
	}

	// With AMQP_URL set, submissions go to RabbitMQ and a separate consumer
	// process (cmd/consumercli.go) records them. Otherwise an in-process queue
	// keeps the async write path without a broker.
	var dispatcher messages.Dispatcher
	var closeQueue func()
	if amqpURL := commons.GetEnv("AMQP_URL"); amqpURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{AMQPURL: amqpURL})
		if err != nil {
			commons.Logger.Error("Failed to initialize RabbitMQ client:", err)
			os.Exit(1)
		}
		dispatcher = client
		closeQueue = client.Close
	} else {
		commons.Logger.Info("AMQP_URL not set, using in-process message queue")
		recorder := messages.NewRecorder(db.Conn)
		inproc := queue.NewInProc(func(text string) error {
			_, err := recorder.Record(text)
			return err
		}, 0)
		dispatcher = inproc
		closeQueue = inproc.Close
	}

	service := messages.NewService(messages.NewRepository(db.Conn), dispatcher, maxLimit)
	routes.RegisterRoutes(e, handlers.NewMessageHandler(service))

	port := commons.GetEnv("PORT")
	if port == "" {
		port = ":8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	// Close before Fatal: Fatal exits the process, so a defer would not drain
	// the in-process queue.
	err := e.Start(port)
	closeQueue()
	e.Logger.Fatal(err)
}
