package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stb34101/beltgo/mode"
)

var macKeyHex string

var macCmd = &cobra.Command{
	Use:   "mac [file]",
	Short: "Compute a belt-MAC tag over a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := hex.DecodeString(macKeyHex)
		if err != nil {
			return fmt.Errorf("decoding --key: %w", err)
		}
		data, err := readInput(args)
		if err != nil {
			return err
		}

		m, err := mode.NewMAC(key)
		if err != nil {
			return err
		}
		defer m.Close()

		m.StepA(data)
		fmt.Println(hex.EncodeToString(m.StepG()))
		return nil
	},
}

func init() {
	macCmd.Flags().StringVar(&macKeyHex, "key", "", "hex-encoded belt key (16/24/32 octets)")
	_ = macCmd.MarkFlagRequired("key")
}
