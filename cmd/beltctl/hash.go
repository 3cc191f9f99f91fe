package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stb34101/beltgo/belthash"
)

var hashHMACKey string

var hashCmd = &cobra.Command{
	Use:   "hash [file]",
	Short: "Compute belt-hash (or belt-HMAC with --key) over a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		if hashHMACKey != "" {
			key, err := hex.DecodeString(hashHMACKey)
			if err != nil {
				return fmt.Errorf("decoding --key: %w", err)
			}
			digest := belthash.Sum256HMAC(key, data)
			fmt.Println(hex.EncodeToString(digest[:]))
			return nil
		}
		digest := belthash.Sum256(data)
		fmt.Println(hex.EncodeToString(digest[:]))
		return nil
	},
}

func init() {
	hashCmd.Flags().StringVar(&hashHMACKey, "key", "", "hex-encoded HMAC key (belt-HMAC instead of belt-hash)")
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
