package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stb34101/beltgo/otp"
)

var (
	otpKeyHex string
	otpDigits int
	otpCtr    uint64
)

var otpCmd = &cobra.Command{
	Use:   "otp",
	Short: "HOTP, TOTP, and OCRA one-time passwords over belt-HMAC",
}

var otpHOTPCmd = &cobra.Command{
	Use:   "hotp",
	Short: "Generate an RFC 4226 HOTP code for --counter",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := hex.DecodeString(otpKeyHex)
		if err != nil {
			return fmt.Errorf("decoding --key: %w", err)
		}
		code, err := otp.HOTP(key, otpCtr, otpDigits)
		if err != nil {
			return err
		}
		fmt.Println(code)
		return nil
	},
}

var otpTOTPCmd = &cobra.Command{
	Use:   "totp",
	Short: "Generate an RFC 6238 TOTP code for the current time",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := hex.DecodeString(otpKeyHex)
		if err != nil {
			return fmt.Errorf("decoding --key: %w", err)
		}
		code, err := otp.TOTP(key, time.Now(), otp.DefaultStep, otpDigits)
		if err != nil {
			return err
		}
		fmt.Println(code)
		return nil
	},
}

// ocraConfig is the on-disk shape of an OCRA session config file, loaded
// with gopkg.in/yaml.v3: the suite string plus the challenge, supplied out
// of band rather than baked into a library-internal config.
type ocraConfig struct {
	Suite     string `yaml:"suite"`
	Challenge string `yaml:"challenge"`
	PINHex    string `yaml:"pin_hex"`
}

var otpOCRAConfigPath string

var otpOCRACmd = &cobra.Command{
	Use:   "ocra",
	Short: "Generate an OCRA response from a YAML suite config (--config)",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := hex.DecodeString(otpKeyHex)
		if err != nil {
			return fmt.Errorf("decoding --key: %w", err)
		}
		raw, err := os.ReadFile(otpOCRAConfigPath)
		if err != nil {
			return fmt.Errorf("reading --config: %w", err)
		}
		var cfg ocraConfig
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return fmt.Errorf("parsing --config: %w", err)
		}

		suite, err := otp.ParseSuite(cfg.Suite)
		if err != nil {
			return err
		}
		params := otp.Params{Challenge: cfg.Challenge, Time: time.Now()}
		if cfg.PINHex != "" {
			pin, err := hex.DecodeString(cfg.PINHex)
			if err != nil {
				return fmt.Errorf("decoding pin_hex: %w", err)
			}
			params.PIN = pin
		}

		code, err := otp.Generate(suite, key, params)
		if err != nil {
			return err
		}
		fmt.Println(code)
		return nil
	},
}

func init() {
	otpCmd.PersistentFlags().StringVar(&otpKeyHex, "key", "", "hex-encoded HMAC key")
	_ = otpCmd.MarkPersistentFlagRequired("key")

	otpHOTPCmd.Flags().IntVar(&otpDigits, "digits", otp.MinDigits, "number of decimal digits")
	otpHOTPCmd.Flags().Uint64Var(&otpCtr, "counter", 0, "HOTP counter value")
	otpTOTPCmd.Flags().IntVar(&otpDigits, "digits", otp.MinDigits, "number of decimal digits")
	otpOCRACmd.Flags().StringVar(&otpOCRAConfigPath, "config", "", "path to a YAML OCRA suite config")
	_ = otpOCRACmd.MarkFlagRequired("config")

	otpCmd.AddCommand(otpHOTPCmd)
	otpCmd.AddCommand(otpTOTPCmd)
	otpCmd.AddCommand(otpOCRACmd)
}
