package config

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	LLM struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		Model   string `mapstructure:"model"`
	} `mapstructure:"llm"`
	Otel struct {
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"otel"`
	Render struct {
		MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
	} `mapstructure:"render"`
}

// Every infrastructure setting defaults to empty, which disables the adapter.
var defaults = map[string]any{
	"app.port":              "8080",
	"app.env":               "development",
	"db.dsn":                "",
	"redis.addr":            "",
	"redis.password":        "",
	"kafka.brokers":         []string{},
	"kafka.topic":           "resume.events",
	"kafka.group_id":        "resume-render-recorder",
	"llm.base_url":          "",
	"llm.api_key":           "",
	"llm.model":             "gpt-4o-mini",
	"otel.endpoint":         "",
	"render.max_body_bytes": 10 << 20,
}

var envBindings = map[string]string{
	"app.port":              "APP_PORT",
	"app.env":               "APP_ENV",
	"db.dsn":                "DB_DSN",
	"redis.addr":            "REDIS_ADDR",
	"redis.password":        "REDIS_PASSWORD",
	"kafka.brokers":         "KAFKA_BROKERS",
	"kafka.topic":           "KAFKA_TOPIC",
	"kafka.group_id":        "KAFKA_GROUP_ID",
	"llm.base_url":          "LLM_BASE_URL",
	"llm.api_key":           "LLM_API_KEY",
	"llm.model":             "LLM_MODEL",
	"otel.endpoint":         "OTEL_EXPORTER_OTLP_ENDPOINT",
	"render.max_body_bytes": "RENDER_MAX_BODY_BYTES",
}

// LoadConfig reads .env, an optional config.yaml from paths (default ".")
// and the environment, in increasing order of precedence.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if err = godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
		log.Printf("note: config.yaml not found, read env only.")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, env := range envBindings {
		if err = v.BindEnv(key, env); err != nil {
			return cfg, err
		}
	}

	err = v.Unmarshal(&cfg)
	return
}
