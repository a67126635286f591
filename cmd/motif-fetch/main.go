// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the motif-fetch CLI.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akovacs/motif-fetch/internal/actionlog"
	"github.com/akovacs/motif-fetch/internal/jaspar"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 30 * time.Second
	defaultDelay     = 1 * time.Second
	defaultUserAgent = "motif-fetch/0.1"

	defaultMotifsDir  = "motifs"
	defaultReportsDir = "reports"
	defaultDataDir    = "data"
	defaultLogPath    = "logs/jaspar_log.txt"
)

// rootCmd is the base command for the motif-fetch CLI.
var rootCmd = &cobra.Command{
	Use:   "motif-fetch",
	Short: "Download human transcription factor motifs from JASPAR",
	Long: `motif-fetch retrieves DNA-binding motif records for human transcription
factors from the JASPAR CORE collection. It supports single keyword search
and fetch, batch downloads driven by a CSV of TF names with a per-keyword
report, and a local history of everything downloaded so far.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./motif-fetch.yaml or ~/.config/motif-fetch/config.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.PersistentFlags().String("log-file", "", "action log file (default logs/jaspar_log.txt)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("motif-fetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "motif-fetch"))
		}
	}

	viper.SetEnvPrefix("MOTIF_FETCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setting resolves a string option: explicit flag, then config file or
// environment, then the built-in default.
func setting(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func httpTimeout(cmd *cobra.Command) time.Duration {
	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		return v
	}
	if v := viper.GetDuration("timeout"); v > 0 {
		return v
	}
	return defaultTimeout
}

func newClient(cmd *cobra.Command) *jaspar.Client {
	return &jaspar.Client{
		HTTP:      &http.Client{Timeout: httpTimeout(cmd)},
		UserAgent: defaultUserAgent,
	}
}

func newLogger(cmd *cobra.Command) *actionlog.Logger {
	return actionlog.New(setting(cmd, "log-file", "log_file", defaultLogPath))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
