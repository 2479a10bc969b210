// internal/config/config.go
package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// JWTConfig は署名シークレットとトークン有効期間。
// グローバル変数としてではなく、TokenService の生成時に明示的に渡す。
type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	// MasteryDecay は習熟度スコアの減衰係数 (0 < decay <= 1)。
	// 小さいほど直近の解答の影響が大きくなる。
	MasteryDecay  float64 `mapstructure:"mastery_decay"`
	UserListLimit int     `mapstructure:"user_list_limit"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	App      AppConfig      `mapstructure:"app"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_SERVER_PORT)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("jwt.secret_key", "STUDY_HELPER_SECRET")
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.Name == "" {
		Cfg.App.Name = AppName
	}
	if Cfg.App.MasteryDecay <= 0 || Cfg.App.MasteryDecay > 1 {
		log.Printf("Mastery decay not set or invalid, using default '%g'", DefaultMasteryDecay)
		Cfg.App.MasteryDecay = DefaultMasteryDecay
	}
	if Cfg.App.UserListLimit <= 0 {
		Cfg.App.UserListLimit = DefaultUserListLimit
	}
	if Cfg.JWT.AccessTokenTTL <= 0 {
		log.Printf("Access token TTL not set, using default '%s'", DefaultAccessTokenTTL)
		Cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	// 署名シークレットだけはデフォルトを用意しない。空のままトークンに
	// 署名すると誰でも偽造できてしまうため、未設定なら起動を中断する
	if Cfg.JWT.SecretKey == "" {
		log.Println("Error: JWT secret key is not set. Set jwt.secret_key in the config file or the STUDY_HELPER_SECRET environment variable.")
		return errors.New("jwt secret key is required")
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Mastery Decay: %g", Cfg.App.MasteryDecay)
	log.Printf("Access Token TTL: %s", Cfg.JWT.AccessTokenTTL)

	return nil
}
