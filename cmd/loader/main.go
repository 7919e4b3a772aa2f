package main

import (
	"context"
	"fmt"
	"os"

	"hrindex/cmd/internal/domain/sqlite"
	"hrindex/cmd/internal/domain/sqlite/repository"
	"hrindex/cmd/internal/infrastructure/xrepository"
	"hrindex/cmd/internal/loader"
	"hrindex/cmd/internal/service"
	"hrindex/cmd/internal/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	var (
		dataDir         string
		dbPath          string
		downloadBaseURL string
		logLevel        string
		skipCodeLists   bool
	)

	rootCmd := &cobra.Command{
		Use:   "hrindex-loader",
		Short: "Ingest German commercial register filings into the hrindex store",
		Long: `hrindex loader

Walks a crawler output directory (one subtree per company), picks the most
recent XJustiz filing per company, extracts company, participant and register
entry records, and loads them into the sqlite store the API serves from.
Optionally refreshes the xrepository.de code lists first.`,
		Run: func(cmd *cobra.Command, args []string) {
			logger := utils.SetupLogging(logLevel)

			_ = godotenv.Load()

			if dataDir == "" {
				dataDir = os.Getenv("DATA_DIR")
			}
			if dbPath == "" {
				dbPath = os.Getenv("DB_PATH")
				if dbPath == "" {
					dbPath = "structured_information.db"
				}
			}
			if downloadBaseURL == "" {
				downloadBaseURL = os.Getenv("DOWNLOAD_BASE_URL")
			}

			if dataDir == "" {
				logger.Error("No data directory given (--data-dir or DATA_DIR)")
				os.Exit(1)
			}

			db, err := sqlite.Init(dbPath)
			if err != nil {
				logger.Errorf("Failed to open database: %v", err)
				os.Exit(1)
			}

			if !skipCodeLists {
				syncService := service.NewReferenceSyncService(
					xrepository.NewClient(),
					repository.NewCodeListRepository(db),
					logger,
				)
				synced, err := syncService.SyncAll(context.Background())
				if err != nil {
					logger.Warnf("Code list sync incomplete (%d loaded): %v", synced, err)
				}
			}

			batchLoader := loader.New(loader.Config{
				RootDir:         dataDir,
				DownloadBaseURL: downloadBaseURL,
			}, db, logger)

			summary, err := batchLoader.Run()
			if err != nil {
				logger.Errorf("Ingest run failed: %v", err)
				os.Exit(1)
			}

			fmt.Printf("Run %s: %d loaded, %d skipped, %d failed (%d participants dropped, %d entries dropped)\n",
				summary.RunID, summary.Loaded, summary.Skipped, summary.Failed,
				summary.DroppedParticipants, summary.DroppedEntries)

			if summary.Failed > 0 {
				os.Exit(1)
			}
		},
	}

	rootCmd.Flags().StringVarP(&dataDir, "data-dir", "d", "", "Crawler output root (one directory tree per company)")
	rootCmd.Flags().StringVarP(&dbPath, "database", "b", "", "Path to the sqlite database file")
	rootCmd.Flags().StringVarP(&downloadBaseURL, "download-base-url", "u", "", "Public base URL recorded as source reference")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&skipCodeLists, "skip-code-lists", false, "Skip refreshing the xrepository code lists")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
