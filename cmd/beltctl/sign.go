package main

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/stb34101/beltgo/bign"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "bign key generation, signing, and verification (thin GF(2^m) EC flow)",
}

var signGenCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate a bign key pair, printing the private scalar and public point as hex",
	RunE: func(cmd *cobra.Command, args []string) error {
		priv, err := bign.GenerateKey()
		if err != nil {
			return err
		}
		pub := priv.Public()
		fmt.Printf("d  = %s\n", priv.D.Text(16))
		fmt.Printf("qx = %s\n", hex.EncodeToString(pub.Q.X.ToBytes()))
		fmt.Printf("qy = %s\n", hex.EncodeToString(pub.Q.Y.ToBytes()))
		return nil
	},
}

var signPrivHex string

var signSignCmd = &cobra.Command{
	Use:   "message <text>",
	Short: "Sign <text> with the private scalar given by --priv",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, ok := new(big.Int).SetString(signPrivHex, 16)
		if !ok {
			return fmt.Errorf("--priv is not a valid hex scalar")
		}
		priv := bign.PrivateKeyFromScalar(d)
		sig, err := priv.Sign([]byte(args[0]))
		if err != nil {
			return err
		}
		fmt.Printf("r = %s\n", sig.R.Text(16))
		fmt.Printf("s = %s\n", sig.S.Text(16))
		return nil
	},
}

var (
	verifyQXHex, verifyQYHex string
	verifyRHex, verifySHex   string
)

var signVerifyCmd = &cobra.Command{
	Use:   "verify <text>",
	Short: "Verify <text> against --qx/--qy and --r/--s",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qx, err := hex.DecodeString(verifyQXHex)
		if err != nil {
			return fmt.Errorf("decoding --qx: %w", err)
		}
		qy, err := hex.DecodeString(verifyQYHex)
		if err != nil {
			return fmt.Errorf("decoding --qy: %w", err)
		}
		pub, err := bign.PublicKeyFromCoords(qx, qy)
		if err != nil {
			return err
		}

		r, ok := new(big.Int).SetString(verifyRHex, 16)
		if !ok {
			return fmt.Errorf("--r is not a valid hex scalar")
		}
		s, ok := new(big.Int).SetString(verifySHex, 16)
		if !ok {
			return fmt.Errorf("--s is not a valid hex scalar")
		}

		if err := pub.Verify([]byte(args[0]), &bign.Signature{R: r, S: s}); err != nil {
			fmt.Println("invalid")
			return err
		}
		fmt.Println("valid")
		return nil
	},
}

func init() {
	signSignCmd.Flags().StringVar(&signPrivHex, "priv", "", "hex-encoded private scalar")
	_ = signSignCmd.MarkFlagRequired("priv")

	signVerifyCmd.Flags().StringVar(&verifyQXHex, "qx", "", "hex-encoded public point X coordinate")
	signVerifyCmd.Flags().StringVar(&verifyQYHex, "qy", "", "hex-encoded public point Y coordinate")
	signVerifyCmd.Flags().StringVar(&verifyRHex, "r", "", "hex-encoded signature r")
	signVerifyCmd.Flags().StringVar(&verifySHex, "s", "", "hex-encoded signature s")
	for _, name := range []string{"qx", "qy", "r", "s"} {
		_ = signVerifyCmd.MarkFlagRequired(name)
	}

	signCmd.AddCommand(signGenCmd)
	signCmd.AddCommand(signSignCmd)
	signCmd.AddCommand(signVerifyCmd)
}
