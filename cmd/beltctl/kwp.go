package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stb34101/beltgo/wbl"
)

var (
	kwpKeyHex    string
	kwpHeaderHex string
)

var kwpCmd = &cobra.Command{
	Use:   "kwp",
	Short: "belt-KWP key wrap / unwrap",
}

var kwpWrapCmd = &cobra.Command{
	Use:   "wrap <hex-src>",
	Short: "Wrap hex-encoded src under --key, optionally authenticating --header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, header, err := kwpKeyAndHeader()
		if err != nil {
			return err
		}
		src, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("decoding src: %w", err)
		}
		dest := make([]byte, len(src)+16)
		if err := wbl.Wrap(key, dest, src, header); err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(dest))
		return nil
	},
}

var kwpUnwrapCmd = &cobra.Command{
	Use:   "unwrap <hex-src>",
	Short: "Unwrap hex-encoded src under --key, checking against --header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, header, err := kwpKeyAndHeader()
		if err != nil {
			return err
		}
		src, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("decoding src: %w", err)
		}
		dest := make([]byte, len(src)-16)
		if err := wbl.Unwrap(key, dest, src, header); err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(dest))
		return nil
	},
}

func kwpKeyAndHeader() (key, header []byte, err error) {
	key, err = hex.DecodeString(kwpKeyHex)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding --key: %w", err)
	}
	if kwpHeaderHex == "" {
		return key, nil, nil
	}
	header, err = hex.DecodeString(kwpHeaderHex)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding --header: %w", err)
	}
	return key, header, nil
}

func init() {
	kwpCmd.PersistentFlags().StringVar(&kwpKeyHex, "key", "", "hex-encoded belt key (16/24/32 octets)")
	kwpCmd.PersistentFlags().StringVar(&kwpHeaderHex, "header", "", "hex-encoded 16-octet header (defaults to all-zero)")
	_ = kwpCmd.MarkPersistentFlagRequired("key")
	kwpCmd.AddCommand(kwpWrapCmd)
	kwpCmd.AddCommand(kwpUnwrapCmd)
}
