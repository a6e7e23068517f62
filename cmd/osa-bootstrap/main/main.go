package main

import (
	"fmt"
	"os"

	osabootstrap "github.com/osa-tools/osa-bootstrap/cmd/osa-bootstrap"
)

func main() {
	rootCmd := osabootstrap.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
