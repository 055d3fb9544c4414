package conf

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var AppConf = &AppConfig{
	LogLevel:  "info",
	LogModule: []string{"consensus"},
}

type AppConfig struct {
	DataDir   string
	LogLevel  string
	LogModule []string
}

// InitConfig loads optional defaults from a bitcoinconsensus.yml file in the
// given directory and overlays the parsed command line options. Missing
// config file is not an error; everything has a default.
func InitConfig(opts *Opts) error {
	viper.SetConfigName("bitcoinconsensus")
	viper.AddConfigPath(GetDataPath(opts.DataDir))

	viper.SetDefault("log.level", AppConf.LogLevel)
	viper.SetDefault("log.module", AppConf.LogModule)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "read config file")
		}
	}

	AppConf.DataDir = GetDataPath(opts.DataDir)
	AppConf.LogLevel = viper.GetString("log.level")
	AppConf.LogModule = viper.GetStringSlice("log.module")
	if opts.LogLevel != "" {
		AppConf.LogLevel = opts.LogLevel
	}
	return nil
}

// GetDataPath resolves the program data dir, defaulting to a dot directory
// under the user home.
func GetDataPath(dataDir string) string {
	if dataDir != "" {
		return dataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".go-bitcoinconsensus")
}
