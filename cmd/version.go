package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd returns the cobra command that outputs the KKR test CLI version
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Args:          cobra.NoArgs,
		Short:         "Prints the KKR test CLI version",
		SilenceErrors: true,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("KKR test CLI version: %s\n", Version)
		},
	}
}
