package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

// Load 讀取 YAML 配置，環境變量優先於配置文件
// 部署時可以完全不帶配置文件，用 DEBATAI_DB_HOST 這類變量覆蓋對應的鍵
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")

	// 每個鍵都要有默認值，AutomaticEnv 才會在 Unmarshal 時讀到對應的環境變量
	viper.SetDefault("server.address", ":8000")
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.user", "user")
	viper.SetDefault("db.password", "password")
	viper.SetDefault("db.name", "debatai")
	viper.SetDefault("db.port", 5432)

	viper.SetEnvPrefix("debatai")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// 找不到配置文件可以接受，其他讀取錯誤要回報
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
