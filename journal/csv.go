// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	events *csv.Writer
	f      *os.File
}

func NewCSV(eventsPath string) (*CSVJournal, error) {
	f, err := os.Create(eventsPath)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{"event_id", "pool_id", "kind", "identity", "amount", "claim_id", "time"}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{w, f}, nil
}

func (j *CSVJournal) RecordEvent(e Event) error {
	j.events.Write([]string{
		e.EventID,
		e.PoolID,
		string(e.Kind),
		string(e.Identity),
		strconv.FormatInt(e.Amount, 10),
		e.ClaimID,
		e.Time.Format(time.RFC3339Nano),
	})
	j.events.Flush()
	return j.events.Error()
}

func (j *CSVJournal) Close() error {
	j.events.Flush()
	if err := j.events.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}
