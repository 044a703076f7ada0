package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Dotenv   string `mapstructure:"dotenv"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Server struct {
		HTTPPort       string        `mapstructure:"HTTPPort"`
		Timeout        time.Duration `mapstructure:"HTTPTimeout"`
		AllowedOrigins []string      `mapstructure:"allowedOrigins"`
	} `mapstructure:"server"`
	GenerativeAI struct {
		APIKey      string        `mapstructure:"apiKey"`
		Model       string        `mapstructure:"model"`
		Temperature float32       `mapstructure:"temperature"`
		Timeout     time.Duration `mapstructure:"timeout"`
	} `mapstructure:"generativeAI"`
	Planner struct {
		SessionTTL      time.Duration `mapstructure:"sessionTTL"`
		CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
		TokenSecret     string        `mapstructure:"tokenSecret"`
	} `mapstructure:"planner"`
	RateLimit struct {
		RequestsPerMinute float64 `mapstructure:"requestsPerMinute"`
		Burst             int     `mapstructure:"burst"`
	} `mapstructure:"rateLimit"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")
	v.AddConfigPath("/usr/local/bin")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Secrets never live in the yml file.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("generativeAI.apiKey", "GOOGLE_GEMINI_API_KEY")
	_ = v.BindEnv("planner.tokenSecret", "PLANNER_TOKEN_SECRET")
	_ = v.BindEnv("mode", "APP_ENV")

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
