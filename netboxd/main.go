package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/team-telnyx/netbox/netboxd/auth"
	"github.com/team-telnyx/netbox/netboxd/config"
	"github.com/team-telnyx/netbox/netboxd/db"
	"github.com/team-telnyx/netbox/netboxd/handlers"
	"github.com/team-telnyx/netbox/netboxd/util"
)

var mainVersion = "unknown"

var shutdownHandlerRunning = false
var shutdownWaitGroup = sync.WaitGroup{}

var httpServer *http.Server

func shutdownHandler() {
	if shutdownHandlerRunning {
		return
	}

	shutdownHandlerRunning = true

	if httpServer != nil {
		err := httpServer.Close()
		if err != nil {
			slog.Error("error closing HTTP server", "err", err)
		}
	}

	if config.Config.Sys.PidFilePath != "" {
		err := os.Remove(config.Config.Sys.PidFilePath)
		if err != nil {
			slog.Error("failed removing pid file", "err", err)
		}
	}

	slog.Info("Exiting normally")
	shutdownWaitGroup.Done()
}

func sigHandler(signal os.Signal) {
	slog.Debug("got signal", "signal", signal)

	switch signal {
	case syscall.SIGINT:
		shutdownHandler()
	case syscall.SIGTERM:
		shutdownHandler()
	default:
		slog.Info("Ignoring signal", "signal", signal)
	}
}

func setupLogging() {
	logFile, err := os.OpenFile(config.Config.Log.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("failed to open log file", "err", err)
		os.Exit(1)
	}

	programLevel := new(slog.LevelVar) // Info by default
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: programLevel}))
	slog.SetDefault(logger)

	switch strings.ToLower(config.Config.Log.Level) {
	case "debug":
		programLevel.Set(slog.LevelDebug)
	case "info":
		programLevel.Set(slog.LevelInfo)
	case "warn":
		programLevel.Set(slog.LevelWarn)
	case "error":
		programLevel.Set(slog.LevelError)
	default:
		programLevel.Set(slog.LevelInfo)
	}

	util.SetAccessLog(config.Config.Log.AccessLog)
	util.SetErrorLog(config.Config.Log.ErrorLog)
}

func writePidFile() {
	if config.Config.Sys.PidFilePath == "" {
		return
	}

	err := os.WriteFile(config.Config.Sys.PidFilePath, []byte(strconv.Itoa(os.Getpid())), 0o644) //nolint:gosec
	if err != nil {
		slog.Error("failed writing pid file", "err", err)
		os.Exit(1)
	}
}

func main() {
	config.Load()

	setupLogging()
	writePidFile()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGINT)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		for {
			s := <-signals
			sigHandler(s)
		}
	}()

	slog.Debug("starting migrations")
	db.AutoMigrate()
	db.CustomMigrate()
	slog.Debug("finished migrations")

	handlers.SetAuthChecker(auth.NewStaticChecker(config.Config.Auth.Tokens))

	if config.Config.Metrics.Enabled {
		setupMetrics()

		go serveMetrics()
	}

	listenAddr := net.JoinHostPort(
		config.Config.Network.HTTP.IP,
		strconv.FormatUint(uint64(config.Config.Network.HTTP.Port), 10),
	)

	httpServer = &http.Server{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: time.Duration(config.Config.Network.HTTP.Timeout) * time.Second,
		Addr:         listenAddr,
		Handler:      setupRoutes(),
	}

	slog.Info("Starting Daemon", "version", mainVersion, "listen", listenAddr)
	fmt.Printf("netboxd version %s listening on %s\n", mainVersion, listenAddr)

	go func() {
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "err", err)
			panic(err)
		}
	}()

	shutdownWaitGroup.Add(1)
	shutdownWaitGroup.Wait()
}
