package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
)

const DefaultConfigFile = "config/config.dev.json"

type Config struct {
	AppConfig  AppConfig    `env:"APPCONFIG"`
	DBConfig   DBConfig     `env:"DBCONFIG"`
	AuthConfig AuthConfig   `env:"AUTHCONFIG"`
	IRCConfig  IRCConfig    `env:"IRCCONFIG"`
	Users      []UserConfig `env:"USERS"`
}

type AppConfig struct {
	APPName  string `default:"stillalive"`
	Version  string `default:"x.x.x" env:"VERSION"`
	Port     int    `default:"8080" env:"APP_PORT"`
	LogLevel string `default:"info" env:"LOG_LEVEL"`
	Timezone string `default:"UTC" env:"APP_TIMEZONE"`
}

type DBConfig struct {
	Driver      string `default:"postgres" env:"DBDRIVER"`
	Host        string `default:"localhost" env:"DBHOST"`
	DataBase    string `default:"stillalive" env:"DBNAME"`
	User        string `default:"postgres" env:"DBUSERNAME"`
	Password    string `env:"DBPASSWORD" default:"mysecretpassword"`
	Port        uint   `default:"5432" env:"DBPORT"`
	SSLMode     string `default:"disable" env:"DBSSL"`
	Path        string `default:"still_alive.db" env:"DBPATH"`
	AutoMigrate bool   `default:"true" env:"DBAUTOMIGRATE"`
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET"`
	TokenTTL  string `default:"24h" env:"JWT_EXPIRY"`
}

type IRCConfig struct {
	Enabled          bool   `env:"IRC_ENABLED"`
	Host             string `env:"HOST"`
	Port             int    `env:"PORT"`
	SSL              bool   `env:"SSL"`
	Nick             string `env:"NICK" default:"stillalive"`
	ChannelsString   string `env:"CHANNELS"`
	Channels         []string
	Network          string `env:"NETWORK"`
	NickservCommand  string `env:"NICKSERV_COMMAND" default:"PRIVMSG NickServ IDENTIFY %s"`
	NickservPassword string `env:"NICKSERV_PASSWORD" default:""`
}

// UserConfig seeds one roster entry. Password is optional and only applied
// when the profile is created.
type UserConfig struct {
	Username string `json:"username"`
	Color    string `json:"color"`
	Password string `json:"password"`
}

// DefaultUsers is the roster used when the config names nobody.
var DefaultUsers = []UserConfig{
	{Username: "You", Color: "#FF6B6B"},
	{Username: "Brother", Color: "#4ECDC4"},
}

// LoadConfig reads .env (if present) and then the given config files, with
// environment variables taking precedence.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load()

	if len(files) == 0 {
		files = []string{DefaultConfigFile}
	}

	var config = Config{}
	if err := configor.New(&configor.Config{Silent: true}).Load(&config, files...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	config.IRCConfig.Channels = splitChannels(config.IRCConfig.ChannelsString)
	if len(config.Users) == 0 {
		config.Users = append([]UserConfig(nil), DefaultUsers...)
	}

	return config, nil
}

// Location resolves AppConfig.Timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil || c.Timezone == "" {
		return time.UTC
	}
	return loc
}

// TTL parses AuthConfig.TokenTTL, falling back to 24h.
func (c AuthConfig) TTL() time.Duration {
	ttl, err := time.ParseDuration(c.TokenTTL)
	if err != nil || ttl <= 0 {
		return 24 * time.Hour
	}
	return ttl
}

func splitChannels(s string) []string {
	var channels []string
	for _, ch := range strings.Split(s, ",") {
		if ch = strings.TrimSpace(ch); ch != "" {
			channels = append(channels, ch)
		}
	}
	return channels
}
