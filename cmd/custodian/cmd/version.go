package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the custodian CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("custodian version %s\n", version)
		fmt.Println("A shared custodial pool ledger with claim-ticket withdrawals")
		fmt.Println("https://github.com/rustyeddy/custodian")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
