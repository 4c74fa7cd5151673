package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"formdesk/core/config"
	"formdesk/core/database"
	"formdesk/core/logger"
	"formdesk/core/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// submissionsCmd represents the submissions command
var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Print the stored submissions",
	Long:  `Loads the full submission collection from the configured store and prints it as JSON in insertion order.`,
	Run: func(cmd *cobra.Command, args []string) {
		runListSubmissions(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(submissionsCmd)
}

func runListSubmissions(ctx context.Context) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	var st store.Store
	switch cfg.Store.Backend {
	case store.BackendMySQL:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		st = store.NewGormStore(db)
	default:
		st = store.NewFileStore(cfg.Store.Path, logg)
	}

	subs, err := st.LoadAll(ctx)
	if err != nil {
		logg.Fatal("Failed to load submissions", zap.Error(err))
	}

	out, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		logg.Fatal("Failed to encode submissions", zap.Error(err))
	}

	fmt.Println(string(out))
	fmt.Printf("Total: %d submission(s)\n", len(subs))
}
