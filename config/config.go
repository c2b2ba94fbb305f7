package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Static   Static
	Log      Log
}

type Server struct {
	Port               string
	IsDevSystem        bool
	ProductionURL      string
	ProductionBasePath string
}

type Database struct {
	Path           string
	ProbeQuery     string
	ProbeQuestions []string
	MaxOpenConns   int
}

type Static struct {
	Dir         string
	LandingPage string
}

type Log struct {
	Level string
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.SetDefault("SERVER_PORT", "7000")
	v.SetDefault("IS_DEV_SYSTEM", true)
	v.SetDefault("PRODUCTION_URL", "https://kgrc4si.home.kg/score")
	v.SetDefault("PRODUCTION_BASE_PATH", "/score")
	v.SetDefault("DATABASE_PATH", "test.db")
	v.SetDefault("DATABASE_PROBE_QUERY", "select * from table1")
	v.SetDefault("DATABASE_PROBE_QUESTIONS", "Q1")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 4)
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("LANDING_PAGE", "assets/Test0.html")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.IsDevSystem = v.GetBool("IS_DEV_SYSTEM")
	config.Server.ProductionURL = strings.TrimSuffix(v.GetString("PRODUCTION_URL"), "/")
	config.Server.ProductionBasePath = v.GetString("PRODUCTION_BASE_PATH")
	config.Database.Path = v.GetString("DATABASE_PATH")
	config.Database.ProbeQuery = v.GetString("DATABASE_PROBE_QUERY")
	config.Database.ProbeQuestions = strings.Fields(v.GetString("DATABASE_PROBE_QUESTIONS"))
	config.Database.MaxOpenConns = v.GetInt("DATABASE_MAX_OPEN_CONNS")
	config.Static.Dir = v.GetString("STATIC_DIR")
	config.Static.LandingPage = v.GetString("LANDING_PAGE")
	config.Log.Level = v.GetString("LOG_LEVEL")

	if config.Server.Port == "" {
		return nil, fmt.Errorf("SERVER_PORT must not be empty")
	}
	if config.Database.MaxOpenConns < 1 {
		return nil, fmt.Errorf("DATABASE_MAX_OPEN_CONNS must be positive, got %d", config.Database.MaxOpenConns)
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

// BaseURL is the public address printed in logs and used as the documented server.
func (c *Config) BaseURL() string {
	if c.Server.IsDevSystem {
		return "http://localhost:" + c.Server.Port
	}
	return c.Server.ProductionURL
}

// DocsBasePath is the path prefix the API is reachable under, "/" on a dev system.
func (c *Config) DocsBasePath() string {
	if c.Server.IsDevSystem || c.Server.ProductionBasePath == "" {
		return "/"
	}
	return c.Server.ProductionBasePath
}
