package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`

	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`

	BaseUrl        string `yaml:"base_url"`
	PrivateKeyPath string `yaml:"private_key_path"`

	// AttendanceCooldownSeconds is the server-enforced window between two
	// attendance actions of the same account.
	AttendanceCooldownSeconds int `yaml:"attendance_cooldown_seconds"`

	EmailEnabled bool   `yaml:"email_enabled"`
	EmailFrom    string `yaml:"email_from"`
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	SMTPUseTLS   bool   `yaml:"smtp_use_tls"`

	Debug bool `yaml:"debug"`
}

func NewConfig(path string) (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}

	if c.PrivateKeyPath == "" {
		c.PrivateKeyPath = "./private.pem"
	}
	if c.AttendanceCooldownSeconds <= 0 {
		c.AttendanceCooldownSeconds = 60
	}

	return &c, nil
}
