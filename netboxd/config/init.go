package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

var configFile = flag.String("config", "config.yml", "Config File")

var errConfigBadPort = errors.New("invalid port")

func setDefaults() {
	Config.DB.Path = "netbox.sqlite"
	Config.Log.Level = "info"
	Config.Log.Path = "netboxd.log"
	Config.Network.HTTP.IP = "0.0.0.0"
	Config.Network.HTTP.Port = 8000
	Config.Network.HTTP.Timeout = 60
	Config.Metrics.Host = "localhost"
	Config.Metrics.Port = 9090
}

func applyEnv() {
	if dbPath := os.Getenv("NETBOXD_DB_PATH"); dbPath != "" {
		Config.DB.Path = dbPath
	}

	if listenIP := os.Getenv("NETBOXD_HOST"); listenIP != "" {
		Config.Network.HTTP.IP = listenIP
	}

	if listenPort := os.Getenv("NETBOXD_PORT"); listenPort != "" {
		Config.Network.HTTP.Port = cast.ToUint(listenPort)
	}

	if logLevel := os.Getenv("NETBOXD_LOG_LEVEL"); logLevel != "" {
		Config.Log.Level = logLevel
	}
}

func validateConfig() error {
	if Config.Network.HTTP.Port == 0 || Config.Network.HTTP.Port > 65535 {
		return fmt.Errorf("%w: %d", errConfigBadPort, Config.Network.HTTP.Port)
	}

	if Config.Metrics.Enabled {
		if Config.Metrics.Port == 0 || Config.Metrics.Port > 65535 {
			return fmt.Errorf("%w: %d", errConfigBadPort, Config.Metrics.Port)
		}
	}

	if net.ParseIP(Config.Network.HTTP.IP) == nil {
		return fmt.Errorf("%w: bad listen IP %s", errConfigBadPort, Config.Network.HTTP.IP)
	}

	switch strings.ToLower(Config.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		Config.Log.Level = "info"
	}

	return nil
}

func Load() {
	flag.Parse()

	setDefaults()

	configBytes, err := os.ReadFile(*configFile)
	if err != nil {
		slog.Warn("config file not readable, using defaults", "file", *configFile, "err", err)
	} else {
		err = yaml.Unmarshal(configBytes, &Config)
		if err != nil {
			slog.Error("config loading failed", "err", err)
			os.Exit(1)
		}
	}

	applyEnv()

	err = validateConfig()
	if err != nil {
		fmt.Printf("invalid config: %s\n", err)
		os.Exit(1)
	}
}
