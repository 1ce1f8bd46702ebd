package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hr-agent"

	defaultDataDir = "data"
	defaultTopN    = 5
	defaultTone    = "friendly"
)

type Config struct {
	DataDir string        `mapstructure:"data-dir"`
	Search  *SearchConfig `mapstructure:"search"`
	Email   *EmailConfig  `mapstructure:"email"`
}

type SearchConfig struct {
	TopN int `mapstructure:"top-n"`
}

type EmailConfig struct {
	DefaultTone string `mapstructure:"default-tone"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hr-agent is a chat-style cli for quick recruiting tasks: search candidates, keep shortlists and draft outreach emails",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("data-dir", "HR_AGENT_DATA_DIR"); err != nil {
		log.Fatalf("binding HR_AGENT_DATA_DIR environment variable: %v", err)
	}

	viper.SetDefault("data-dir", defaultDataDir)
	viper.SetDefault("search.top-n", defaultTopN)
	viper.SetDefault("email.default-tone", defaultTone)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hr-agent.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if err := readConfig(); err != nil {
		log.Fatal(err)
	}
}

func readConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// The name is registered without its extension; viper appends
		// the supported ones while searching.
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional; defaults cover every key. A file that
	// exists but cannot be parsed is an error.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
