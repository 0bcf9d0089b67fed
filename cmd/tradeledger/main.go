package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tradeledger/internal/cli"
	"tradeledger/internal/config"
	"tradeledger/internal/csvfile"
	applog "tradeledger/internal/log"
	"tradeledger/internal/menu"
	"tradeledger/internal/report"
	"tradeledger/internal/store"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	cfgFile  string
	dataFile string
)

var rootCmd = &cobra.Command{
	Use:   "tradeledger",
	Short: "Manage and analyze import/export trade transactions",
	Long: `Tradeledger loads a delimited trade transaction dataset and opens an
interactive menu for filtering, sorting, editing, summarizing and
re-exporting the transactions.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		st, err := loadStore(cfg)
		if err != nil {
			return err
		}
		m := menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), st, logger)
		m.ExportDir = cfg.ExportDir
		return m.Run()
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print count, total and average value of the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := bootstrap()
		if err != nil {
			return err
		}
		st, err := loadStore(cfg)
		if err != nil {
			return err
		}
		s := report.Summarize(st.Snapshot())
		fmt.Fprintf(cmd.OutOrStdout(), "Total Transactions: %d\n", s.Count)
		fmt.Fprintf(cmd.OutOrStdout(), "Total Trade Value: $%.2f\n", s.Total)
		fmt.Fprintf(cmd.OutOrStdout(), "Average Trade Value: $%.2f\n", s.Average)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Re-export the dataset in the 5-column format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := bootstrap()
		if err != nil {
			return err
		}
		st, err := loadStore(cfg)
		if err != nil {
			return err
		}
		target := args[0]
		if !filepath.IsAbs(target) {
			target = filepath.Join(cfg.ExportDir, target)
		}
		return csvfile.ExportFile(target, st.Snapshot())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "path to the transaction dataset (overrides config)")
	rootCmd.AddCommand(summaryCmd, exportCmd)
}

// bootstrap wires env file, configuration and logging in the order the
// binaries share: .env first so config sees it, logger last so it runs
// at the configured level.
func bootstrap() (*config.Config, *applog.Logger, error) {
	cli.LoadEnvFile()
	cfg, level, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	logger := cli.SetupLogger(level)
	return cfg, logger, nil
}

func loadStore(cfg *config.Config) (*store.Store, error) {
	records, err := csvfile.Load(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	return store.New(records)
}
