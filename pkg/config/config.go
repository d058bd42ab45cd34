package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8080"`
}

// Sources configures the two upstream data sources consumed by the refresh
// pipeline. The defaults match the public restcountries and open.er-api
// endpoints; override them to point at fixtures in tests.
type Sources struct {
	CountriesUrl string        `envconfig:"COUNTRIES_URL" default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	RatesUrl     string        `envconfig:"RATES_URL" default:"https://open.er-api.com/v6/latest/USD"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type Summary struct {
	ImagePath string `envconfig:"IMAGE_PATH" default:"cache/summary.png"`
}

type Log struct {
	Level  int    `envconfig:"LEVEL" default:"0"`
	Format string `envconfig:"FORMAT" default:"json"`
}

type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development"`
	Server  *Server  `envconfig:"SERVER"`
	Log     *Log     `envconfig:"LOG"`
	DB      *DB      `envconfig:"DATABASE"`
	Sources *Sources `envconfig:"SOURCE"`
	Summary *Summary `envconfig:"SUMMARY"`
}
