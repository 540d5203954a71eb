package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// API holds API server configuration.
type API struct {
	Host            string   `mapstructure:"host"`
	Port            int      `mapstructure:"port" validate:"min=1,max=65535"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	ShutdownTimeout string   `mapstructure:"shutdown_timeout"`
}

// Load loads configuration from a file into the given config struct.
// Every key in defaults can be overridden by an environment variable whose
// name is the upper-cased key with "." replaced by "_".
func Load(path string, defaults map[string]interface{}, config interface{}) error {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			log.Println("Failed to read config file, falling back to environment variables")
		}
	}

	return v.Unmarshal(config)
}
