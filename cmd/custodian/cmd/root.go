package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "custodian",
	Short: "A shared custodial pool ledger with claim-ticket withdrawals",
	Long: `Custodian is a pooled balance ledger written in Go.

Many depositors commingle fungible value into a single pool; each depositor
can later withdraw only what is attributable to them. Two withdrawal
disciplines are supported:

  - open: any caller may withdraw up to the pool balance
  - claim-ticket: withdrawal requires presenting an owned claim

It provides tools for:
  - Running scripted deposit/withdrawal scenarios from a config file
  - Querying the SQLite audit journal
  - Small built-in demos of both disciplines

Complete documentation is available at https://github.com/rustyeddy/custodian`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
