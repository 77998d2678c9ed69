package config

type Info struct {
	Sys struct {
		PidFilePath string
	}
	DB struct {
		Path string `yaml:"path"`
	} `yaml:"db"`
	Log struct {
		Path      string `yaml:"path"`
		Level     string `yaml:"level"`
		AccessLog string `yaml:"accesslog"`
		ErrorLog  string `yaml:"errorlog"`
	} `yaml:"log"`
	Network struct {
		HTTP struct {
			IP      string `yaml:"ip"`
			Port    uint   `yaml:"port"`
			Timeout uint64 `yaml:"timeout"` // in seconds
		} `yaml:"http"`
	} `yaml:"network"`
	Auth struct {
		// token -> list of permission capability strings, "*" for all
		Tokens map[string][]string `yaml:"tokens"`
	} `yaml:"auth"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Host    string `yaml:"host"`
		Port    uint   `yaml:"port"`
	} `yaml:"metrics"`
}

var Config Info
