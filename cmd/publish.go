package cmd

import (
	"context"
	"fmt"
	"os"

	"formdesk/core/config"
	"formdesk/core/logger"
	"formdesk/core/storage"
	"formdesk/feature/assets/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	publishDryRun bool
	publishPrune  bool
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the public root into the storage bucket",
	Long: `Uploads local files missing from the bucket so the static asset server can
run with the bucket origin. With --prune, bucket objects absent from the local
tree are removed. With --dry-run, only the difference is reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		runPublish(cmd.Context())
	},
}

func init() {
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "report the difference without uploading")
	publishCmd.Flags().BoolVar(&publishPrune, "prune", false, "remove bucket objects absent from the local tree")
	RootCmd.AddCommand(publishCmd)
}

func runPublish(ctx context.Context) {
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

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	svc := sync.NewService(client, cfg.Storage.Bucket, cfg.Server.PublicRoot, logg)

	if err := svc.EnsureBucket(ctx); err != nil {
		logg.Fatal("Failed to ensure bucket", zap.Error(err))
	}

	report, err := svc.Diff(ctx)
	if err != nil {
		logg.Fatal("Failed to diff public root against bucket", zap.Error(err))
	}

	fmt.Printf("In sync: %d, to upload: %d, stale in bucket: %d\n",
		report.InSync, len(report.Missing), len(report.Extra))

	if publishDryRun {
		for _, name := range report.Missing {
			fmt.Printf("  would upload %s\n", name)
		}
		for _, name := range report.Extra {
			fmt.Printf("  stale        %s\n", name)
		}
		return
	}

	uploaded, err := svc.Push(ctx, report.Missing)
	if err != nil {
		logg.Fatal("Publish failed", zap.Int("uploaded", uploaded), zap.Error(err))
	}
	fmt.Printf("Uploaded %d file(s)\n", uploaded)

	if publishPrune {
		removed, err := svc.Prune(ctx, report.Extra)
		if err != nil {
			logg.Fatal("Prune failed", zap.Int("removed", removed), zap.Error(err))
		}
		fmt.Printf("Removed %d stale object(s)\n", removed)
	}
}
