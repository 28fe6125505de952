package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"mini-networth/internal/config"
	"mini-networth/internal/gateway"
	"mini-networth/internal/usecase"
)

func main() {
	// Define command-line flags
	envFile := flag.String("env-file", ".env", "Path to an optional dotenv file")
	accountFilesStr := flag.String("accounts", "", "Comma-separated list of paths to account snapshot CSV files (defaults to NETWORTH_ACCOUNT_FILES)")
	flag.Parse()

	cfg := config.Load(*envFile)

	// Logs go to stderr so stdout carries only the report
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	accountFiles := cfg.AccountFiles
	if strings.TrimSpace(*accountFilesStr) != "" {
		accountFiles = config.SplitList(*accountFilesStr)
	}
	if len(accountFiles) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -accounts (or NETWORTH_ACCOUNT_FILES) is required.")
		flag.Usage()
		os.Exit(1)
	}

	// --- Dependency Injection (Wiring the application) ---
	csvRepo := gateway.NewCSVAccountRepository()
	summaryUseCase := usecase.NewFinancialSummaryUseCase(csvRepo, logger)

	// --- Execute the Usecase ---
	logger.Info("building financial summary", "env", cfg.Env, "files", accountFiles)
	report, err := summaryUseCase.Summarize(context.Background(), accountFiles)
	if err != nil {
		logger.Error("financial summary failed", "error", err)
		os.Exit(1)
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("failed to generate JSON report", "error", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}
