package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "xmlcatalog",
		Location: "Asia/Shanghai",
		Workdir:  "/var/xmlcatalog",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 5000,
	},
	Database: DBConfig{
		Type:   "postgres",
		Host:   "127.0.0.1",
		Port:   5432,
		Name:   "xmlcatalog",
		User:   "postgres",
		Passwd: "myroot",
		Debug:  false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/xmlcatalog/xmlcatalog.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig reads the YAML configuration file and applies environment
// overrides. A missing file is not an error; defaults are used instead.
func LoadConfig(cfile string) *AppConfig {
	// optional .env in the working directory
	_ = godotenv.Load()

	defaults := *DefaultAppConfig
	cfg := &defaults
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			cfg = new(AppConfig)
			if err := yaml.Unmarshal(data, cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("XMLCATALOG_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("XMLCATALOG_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("XMLCATALOG_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("XMLCATALOG_WEB_PORT", func(v int) { cfg.Web.Port = v })

	setEnvValue("XMLCATALOG_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("XMLCATALOG_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("XMLCATALOG_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("XMLCATALOG_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("XMLCATALOG_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("XMLCATALOG_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvBoolValue("XMLCATALOG_DB_DEBUG", func(v bool) { cfg.Database.Debug = v })

	setEnvValue("XMLCATALOG_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvBoolValue("XMLCATALOG_LOGGER_FILE_ENABLE", func(v bool) { cfg.Logger.FileEnable = v })

	return cfg
}
