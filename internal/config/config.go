// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL は DATABASE_URL が設定されていない場合のエラーです。
// 起動時に検出された場合は致命的エラーとして扱います。
var ErrMissingDatabaseURL = errors.New("config: database url (DATABASE_URL) is required")

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type GoogleOAuthConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	RedirectURI  string        `mapstructure:"redirect_uri"`
	TokenURL     string        `mapstructure:"token_url"`
	UserInfoURL  string        `mapstructure:"userinfo_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type OAuthConfig struct {
	Google GoogleOAuthConfig `mapstructure:"google"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxAge         int      `mapstructure:"max_age"`
}

type AppConfig struct {
	QuizDefaultLimit int `mapstructure:"quiz_default_limit"`
	QuizMaxLimit     int `mapstructure:"quiz_max_limit"`
	SearchLimit      int `mapstructure:"search_limit"`
}

// AdminConfig は管理用エンドポイント (seed) の設定です。
// SeedToken が空の場合、HTTP 経由の seed は無効になります。
type AdminConfig struct {
	SeedToken string `mapstructure:"seed_token"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	OAuth    OAuthConfig    `mapstructure:"oauth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

var Cfg Config

// envBindings は設定キーと環境変数名の対応表です。
var envBindings = map[string]string{
	"database.url":               "DATABASE_URL",
	"server.port":                "PORT",
	"log.level":                  "LOG_LEVEL",
	"jwt.secret_key":             "JWT_SECRET",
	"jwt.access_token_ttl":       "JWT_TTL",
	"oauth.google.client_id":     "GOOGLE_CLIENT_ID",
	"oauth.google.client_secret": "GOOGLE_CLIENT_SECRET",
	"oauth.google.redirect_uri":  "GOOGLE_REDIRECT_URI",
	"admin.seed_token":           "ADMIN_SEED_TOKEN",
}

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	cfg.applyDefaults()
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Seed endpoint enabled: %t", Cfg.Admin.SeedToken != "")
	return nil
}

// MinWriteTimeout は Google ログインの連続した外部呼び出しが書き込み期限内に収まる最小値です。
func MinWriteTimeout(oauthTimeout time.Duration) time.Duration {
	return (OAuthCallsPerLogin + 1) * oauthTimeout
}

// applyDefaults は未設定の項目にデフォルト値を入れます。
func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	// PORT=8080 のような指定も受け付ける
	if !strings.Contains(c.Server.Port, ":") {
		c.Server.Port = ":" + c.Server.Port
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.JWT.AccessTokenTTL <= 0 {
		c.JWT.AccessTokenTTL = DefaultTokenTTL
	}
	if c.OAuth.Google.TokenURL == "" {
		c.OAuth.Google.TokenURL = GoogleTokenURL
	}
	if c.OAuth.Google.UserInfoURL == "" {
		c.OAuth.Google.UserInfoURL = GoogleUserInfoURL
	}
	if c.OAuth.Google.Timeout <= 0 {
		c.OAuth.Google.Timeout = DefaultOAuthTimeout
	}
	if floor := MinWriteTimeout(c.OAuth.Google.Timeout); c.Server.WriteTimeout < floor {
		c.Server.WriteTimeout = floor
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if c.App.QuizDefaultLimit <= 0 {
		c.App.QuizDefaultLimit = DefaultQuizLimit
	}
	if c.App.QuizMaxLimit <= 0 {
		c.App.QuizMaxLimit = DefaultQuizMaxLimit
	}
	if c.App.SearchLimit <= 0 {
		c.App.SearchLimit = DefaultSearchLimit
	}
}

// Validate は起動に必須の設定が揃っているかを確認します。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// ValidateServe は HTTP サーバー起動時の追加チェックです。
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.JWT.SecretKey == "" {
		return errors.New("config: jwt secret (JWT_SECRET) is required")
	}
	return nil
}
