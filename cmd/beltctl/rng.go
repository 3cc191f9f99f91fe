package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stb34101/beltgo/entropy"
)

var rngCmd = &cobra.Command{
	Use:   "rng",
	Short: "Entropy source health tests and RNG singleton extraction",
}

var rngHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Run the FIPS-140-1 battery against each built-in entropy source",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, src := range entropy.Sources() {
			res, err := entropy.TestSource(src)
			if err != nil {
				fmt.Printf("%-6s unavailable: %v\n", src.Tag(), err)
				continue
			}
			fmt.Printf("%-6s monobit=%v poker=%v runs=%v longrun=%v pass=%v\n",
				src.Tag(), res.Monobit, res.Poker, res.Runs, res.LongRun, res.Pass())
		}

		ok, err := entropy.Health(entropy.Sources())
		if err != nil {
			return err
		}
		fmt.Printf("overall: %v\n", ok)
		return nil
	},
}

var rngReadLen int

var rngReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Extract --len octets from the process-wide RNG singleton",
	RunE: func(cmd *cobra.Command, args []string) error {
		handle, err := entropy.Create(nil)
		if err != nil {
			return err
		}
		defer handle.Close()

		buf := make([]byte, rngReadLen)
		if err := entropy.StepR(buf); err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(buf))
		return nil
	},
}

func init() {
	rngReadCmd.Flags().IntVar(&rngReadLen, "len", 32, "number of octets to extract")
	rngCmd.AddCommand(rngHealthCmd)
	rngCmd.AddCommand(rngReadCmd)
}
