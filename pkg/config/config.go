package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	path string
}

// New loads the env file at path once. A missing file leaves the process
// environment as the only source.
func New(path string) *Config {
	once.Do(func() {
		err := godotenv.Load(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Fatal("loading envs error: ", err)
			}
			log.Printf("env file %s not found, using process environment", path)
		}
		instance = &Config{path: path}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// Location of the service day boundaries. Falls back to time.Local.
func (c *Config) Location() *time.Location {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown APP_TIMEZONE %q, using local time", name)
		return time.Local
	}
	return loc
}
