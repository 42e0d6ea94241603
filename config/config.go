package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"job-board" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret string `default:"" env:"JWT_SECRET"`
	}
	JSearch struct {
		Host               string `default:"https://jsearch.p.rapidapi.com" env:"JSEARCH_HOST"`
		ApiKey             string `default:"" env:"JSEARCH_API_KEY"`
		Query              string `default:"developer" env:"JSEARCH_QUERY"`
		Pages              int    `default:"20" env:"JSEARCH_PAGES"`
		Country            string `default:"br" env:"JSEARCH_COUNTRY"`
		RequestTimeout     int    `default:"60" env:"JSEARCH_REQUEST_TIMEOUT_IN_SEC"`
		ImportPeriod       int    `default:"4" env:"IMPORT_PERIOD_IN_HOURS"`
		ImportStartDelay   int    `default:"30" env:"IMPORT_START_DELAY_IN_SEC"`
		ImportCycleTimeout int    `default:"300" env:"IMPORT_CYCLE_TIMEOUT_IN_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
