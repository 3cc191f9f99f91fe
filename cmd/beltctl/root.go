package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "beltctl",
	Short: "Command-line front end for the belt (STB 34.101.31) cipher suite",
	Long: `beltctl exercises the beltgo module's public packages: belt-hash,
belt-MAC, belt-KWP key wrap, HOTP/TOTP one-time passwords, the entropy
and RNG subsystem, and bign signatures. It is a demonstration and testing
aid, not a certified cryptographic tool.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(macCmd)
	rootCmd.AddCommand(kwpCmd)
	rootCmd.AddCommand(otpCmd)
	rootCmd.AddCommand(rngCmd)
	rootCmd.AddCommand(signCmd)
}
