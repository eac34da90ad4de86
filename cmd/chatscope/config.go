package main

import "time"

type Config struct {
	ChatExportPath  string        `env:"CHAT_EXPORT_PATH,required=true"`
	StopwordsPath   string        `env:"STOPWORDS_PATH"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	ForecastTimeout time.Duration `env:"FORECAST_TIMEOUT,default=30s"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH"`
	StoreReport     bool          `env:"STORE_REPORT,default=false"`
}
