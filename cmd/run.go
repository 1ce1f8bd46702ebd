package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spigell/hr-agent/internal/logger"
	"github.com/spigell/hr-agent/internal/search"
	"github.com/spigell/hr-agent/internal/session"
	"github.com/spigell/hr-agent/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive hr-agent session",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("data-dir", "", "directory with the candidates, jobs and shortlists documents")

	viper.BindPFlag("data-dir", runCmd.Flags().Lookup("data-dir"))
}

// run is the main command for the cli.
func run() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the hr-agent", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	topN := defaultTopN
	if config.Search != nil {
		topN = config.Search.TopN
	}

	if topN < 1 {
		logger.Fatal("search.top-n must be at least 1", zap.Int("top-n", topN))
	}

	tone := defaultTone
	if config.Email != nil && config.Email.DefaultTone != "" {
		tone = config.Email.DefaultTone
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	logger.Info("using data directory", zap.String("data-dir", dataDir))

	st := store.New(dataDir, logger)

	sess := session.New(
		&session.Config{TopN: topN, DefaultTone: tone},
		&session.Deps{
			Store:    st,
			Searcher: search.New(st, logger),
			Logger:   logger,
			Out:      os.Stdout,
		},
	)

	fmt.Println("HR Agent — type 'Quit' to exit.")

	prompt := promptui.Prompt{
		Label: ">",
	}

	for {
		line, err := prompt.Run()
		if err != nil {
			// End of input is a normal goodbye, not a failure.
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				fmt.Println("Bye.")
				return
			}
			logger.Fatal("reading input", zap.Error(err))
		}

		if err := sess.Dispatch(line); err != nil {
			if errors.Is(err, session.ErrQuit) {
				return
			}
			// A failed command does not end the session.
			logger.Error("command failed", zap.Error(err))
		}
	}
}
