package providers

import (
	"fmt"
	"path/filepath"
	"presence/internal/structures"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultFetchTimeout = 10 * time.Second

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("cache.ttl", "600s")
	v.SetDefault("fetch.timeout", defaultFetchTimeout.String())

	_ = v.BindEnv("logger.level", "PRESENCE_LOG_LEVEL")
	_ = v.BindEnv("data.csv", "PRESENCE_DATA_CSV")
	_ = v.BindEnv("data.xml", "PRESENCE_DATA_XML")
	_ = v.BindEnv("data.remoteXml", "PRESENCE_REMOTE_XML")
	_ = v.BindEnv("cache.ttl", "PRESENCE_CACHE_TTL")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "PresenceAnalyzer"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
