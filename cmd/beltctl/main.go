// Command beltctl is a thin CLI wrapping the beltgo suite: hashing, belt-MAC,
// key-wrap, OTP, RNG health/extraction, and bign signatures. It exists
// because every domain-logic repo in the retrieval pack ships a cmd/ entry
// point rather than leaving its library un-demoed; it is not part of the
// core the rest of this module implements.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
