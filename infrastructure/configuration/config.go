package configuration

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"media-portal/infrastructure/logger"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type Config struct {
	App         App         `json:"app"`
	YouTube     YouTube     `json:"youtube"`
	Deployment  Deployment  `json:"deployment"`
	Cache       Cache       `json:"cache"`
	RedisClient RedisClient `json:"redisClient"`
	Calendar    Calendar    `json:"calendar"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	Env  string `json:"env"`
}

// IsDevelopment mirrors the usual "anything but production" rule.
func (a App) IsDevelopment() bool {
	switch strings.ToLower(a.Env) {
	case EnvProduction, "prod":
		return false
	}
	return true
}

// Addr is the listen address for the HTTP server
func (a App) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

type YouTube struct {
	APIKey string `json:"apiKey"`
}

type Deployment struct {
	GitCommit string `json:"gitCommit"`
}

type Cache struct {
	Driver     string `json:"driver"`
	Capacity   int    `json:"capacity"`
	TTLSeconds int    `json:"ttlSeconds"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type Calendar struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	CalendarID   string `json:"calendarId"`
}

type Logger struct {
	Format string `json:"format"`
}

var C Config

func init() {
	Reload()
}

// Reload rebuilds C from the config file and the current environment,
// e.g. after LoadEnvFromFile has populated new variables.
func Reload() {
	C = Config{}
	LoadConfig()
	initApp(&C)
	initYouTube(&C)
	initDeployment(&C)
	initCache(&C)
	initCalendar(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.GetLogger().WithField("config", name).Warn("Config file not found, using environment only")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	if v := os.Getenv("ENV"); v != "" {
		C.App.Env = v
	}
	if C.App.Env == "" {
		C.App.Env = EnvDevelopment
	}
	if v := os.Getenv("HOST"); v != "" {
		C.App.Host = v
	}
	if C.App.Host == "" {
		C.App.Host = "0.0.0.0"
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 3000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 3000
	}
}

func initYouTube(C *Config) {
	C.YouTube.APIKey = getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", "")
}

func initDeployment(C *Config) {
	C.Deployment.GitCommit = getConfigValue(C.Deployment.GitCommit, "GIT_COMMIT", "unknown")
}

func initCache(C *Config) {
	C.Cache.Driver = strings.ToLower(getConfigValue(C.Cache.Driver, "CACHE_DRIVER", CacheDriverMemory))
	if C.Cache.Capacity <= 0 {
		C.Cache.Capacity = 50
	}
	if C.Cache.TTLSeconds <= 0 {
		C.Cache.TTLSeconds = 600
	}
	C.RedisClient.Host = getConfigValue(C.RedisClient.Host, "REDIS_HOST", "localhost")
	C.RedisClient.Port = getConfigValue(C.RedisClient.Port, "REDIS_PORT", "6379")
	C.RedisClient.Username = getConfigValue(C.RedisClient.Username, "REDIS_USERNAME", "")
	C.RedisClient.Password = getConfigValue(C.RedisClient.Password, "REDIS_PASSWORD", "")
}

func initCalendar(C *Config) {
	C.Calendar.ClientID = getConfigValue(C.Calendar.ClientID, "GOOGLE_CALENDAR_CLIENT_ID", "")
	C.Calendar.ClientSecret = getConfigValue(C.Calendar.ClientSecret, "GOOGLE_CALENDAR_CLIENT_SECRET", "")
	C.Calendar.AccessToken = getConfigValue(C.Calendar.AccessToken, "GOOGLE_CALENDAR_ACCESS_TOKEN", "")
	C.Calendar.RefreshToken = getConfigValue(C.Calendar.RefreshToken, "GOOGLE_CALENDAR_REFRESH_TOKEN", "")
	C.Calendar.CalendarID = getConfigValue(C.Calendar.CalendarID, "GOOGLE_CALENDAR_ID", "primary")
}

// getConfigValue gets value from environment first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	// Placeholders such as YOUR_YOUTUBE_API_KEY count as unset
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
