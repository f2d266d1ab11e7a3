package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config is loaded once at startup and passed by value into the wiring in
// main.go. Nothing mutates it afterwards.
type Config struct {
	// Inner fields carry no envconfig name tags: a named inner tag doubles
	// as an un-prefixed fallback, so tagging DB.Port "PORT" would let a bare
	// PORT (or the ubiquitous USER) leak into the database settings. Field
	// names already yield SERVER_PORT, DB_USER and so on. Server.Port alone
	// keeps the bare PORT alias, which is how the port is conventionally set.
	Server struct {
		Port     string `envconfig:"PORT" default:"8080"`
		LogLevel string `split_words:"true" default:"info"`
	} `envconfig:"SERVER"`

	DB struct {
		User string `default:"root"`
		Pass string `default:""`
		Host string `default:"127.0.0.1"`
		Port string `default:"3306"`
		Name string `default:"managehotel"`
	} `envconfig:"DB"`

	Auth struct {
		JWTSecret     string `split_words:"true" default:"change-me"`
		TokenTTLHours int    `split_words:"true" default:"12"`
		AdminUsername string `split_words:"true" default:"admin"`
		AdminPassword string `split_words:"true" default:"admin123"`
	} `envconfig:"AUTH"`

	VNPay struct {
		TmnCode    string `split_words:"true" default:"DEMO"`
		HashSecret string `split_words:"true" default:"demo-secret"`
		PayURL     string `split_words:"true" default:"https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"`
		ReturnURL  string `split_words:"true" default:"http://localhost:8080/vn-pay-callback"`
	} `envconfig:"VNPAY"`

	CORS struct {
		Origins []string `default:"*"`
	} `envconfig:"CORS"`
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found, continuing with environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
