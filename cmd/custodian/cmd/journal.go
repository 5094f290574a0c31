package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/custodian/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query audit journal data",
	Long: `Query and display ledger events from a SQLite audit journal.

Subcommands:
  event  - Get details of a specific event by ID
  today  - List events recorded today
  day    - List events recorded on a specific day
  pool   - List every event for a specific pool

Examples:
  custodian journal event <event-id>
  custodian journal today
  custodian journal day 2026-08-15
  custodian journal pool <pool-id>`,
}

var journalEventCmd = &cobra.Command{
	Use:   "event <event-id>",
	Short: "Get details of a specific event",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalEvent,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List events recorded today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List events recorded on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalPoolCmd = &cobra.Command{
	Use:   "pool <pool-id>",
	Short: "List every event for a specific pool",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalPool,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalEventCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)
	journalCmd.AddCommand(journalPoolCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./custodian.sqlite", "path to SQLite journal DB")
}

func runJournalEvent(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetEvent(args[0])
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	printEvents([]journal.Event{rec})
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	loc := time.Local
	start, end, err := dayBounds(loc, time.Now().In(loc).Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListEventsBetween(start, end)
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}

	printEvents(recs)
	return nil
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	loc := time.Local
	start, end, err := dayBounds(loc, args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListEventsBetween(start, end)
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}

	printEvents(recs)
	return nil
}

func runJournalPool(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListPoolEvents(args[0])
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}

	printEvents(recs)
	return nil
}

func printEvents(recs []journal.Event) {
	if len(recs) == 0 {
		fmt.Println("no events")
		return
	}

	for _, rec := range recs {
		claim := rec.ClaimID
		if claim == "" {
			claim = "-"
		}
		fmt.Printf("%s  %-10s %12d  %-12s pool=%s claim=%s\n",
			rec.Time.Format(time.RFC3339),
			rec.Kind,
			rec.Amount,
			rec.Identity,
			rec.PoolID,
			claim,
		)
	}
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
