package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Mysql  MysqlConfig
	Jwt    JwtConfig
	Http   HttpConfig
	Cookie CookieConfig
	Cfbd   CfbdConfig
	Smtp   SmtpConfig
	Jobs   JobsConfig
}

type HttpConfig struct {
	Port          string `envconfig:"HTTP_PORT" default:"8080"`
	AllowedOrigin string `envconfig:"HTTP_ALLOWED_ORIGIN" default:"http://localhost:5173"`
}

type JwtConfig struct {
	Secret      string `envconfig:"JWT_SECRET" required:"true"`
	ExpiryHours int    `envconfig:"JWT_EXPIRES_HOURS" default:"168"`
}

type CookieConfig struct {
	Name   string `envconfig:"COOKIE_NAME" default:"ngs_token"`
	Secure bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

type MysqlConfig struct {
	User   string `envconfig:"MYSQL_USER"`
	Passwd string `envconfig:"MYSQL_PASSWORD"`
	Host   string `envconfig:"MYSQL_HOST"`
	DBName string `envconfig:"MYSQL_DATABASE"`
}

type CfbdConfig struct {
	BaseURL string `envconfig:"CFB_API_URL" default:"https://api.collegefootballdata.com"`
	APIKey  string `envconfig:"CFB_API_KEY"`
}

type SmtpConfig struct {
	Host             string `envconfig:"SMTP_HOST"`
	Port             int    `envconfig:"SMTP_PORT" default:"587"`
	User             string `envconfig:"SMTP_USER"`
	Password         string `envconfig:"SMTP_PASS"`
	From             string `envconfig:"SMTP_FROM"`
	DigestConference string `envconfig:"DIGEST_CONFERENCE" default:"SEC"`
}

type JobsConfig struct {
	Enabled       bool   `envconfig:"JOBS_ENABLED" default:"false"`
	RefreshEvery  string `envconfig:"JOBS_REFRESH_EVERY" default:"6h"`
	DigestEvery   string `envconfig:"JOBS_DIGEST_EVERY" default:"168h"`
	RefreshSeason int    `envconfig:"JOBS_REFRESH_SEASON"`
}

func New() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
