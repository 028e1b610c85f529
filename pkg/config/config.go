package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DefaultAPIURL      = "http://localhost:9000"
	DefaultFrontendURL = "http://localhost:3000"
	PlaceholderPath    = "/logo192.png"
)

type Options struct {
	APIURL      string
	FrontendURL string
	LogLevel    string
	LogFile     string
	Timeout     time.Duration
}

func NewOptions() *Options {
	return &Options{
		APIURL:      DefaultAPIURL,
		FrontendURL: DefaultFrontendURL,
		LogLevel:    "info",
		LogFile:     "mercari.log",
		Timeout:     10 * time.Second,
	}
}

// LoadEnv overlays values from envFile (if it exists) and the process
// environment. Variables already set in the environment win over the file.
func (o *Options) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	o.APIURL = getEnvOrDefault("API_URL", o.APIURL)
	o.FrontendURL = getEnvOrDefault("FRONTEND_URL", getEnvOrDefault("VITE_FRONTEND_URL", o.FrontendURL))
	o.LogLevel = getEnvOrDefault("LOG_LEVEL", o.LogLevel)
	o.LogFile = getEnvOrDefault("LOG_FILE", o.LogFile)
	if v := getEnvOrDefault("REQUEST_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		o.Timeout = d
	}
	return nil
}

// RegisterFlags binds the options to fs using the current values as defaults,
// so flags take precedence over the environment.
func (o *Options) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.APIURL, "api-url", o.APIURL, "simple-mercari API base URL")
	fs.StringVar(&o.FrontendURL, "frontend-url", o.FrontendURL, "front end base URL serving the placeholder image")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level")
	fs.StringVar(&o.LogFile, "log-file", o.LogFile, "log output (file path, stdout or stderr)")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "HTTP request timeout, 0 disables")
}

func (o *Options) APIBaseURL() string {
	return strings.TrimRight(o.APIURL, "/")
}

func (o *Options) PlaceholderImage() string {
	return strings.TrimRight(o.FrontendURL, "/") + PlaceholderPath
}

func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
