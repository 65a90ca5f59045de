package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}

type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
	}
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	writer := csv.NewWriter(w.out)

	// Write header
	header := []string{"id", "seed", "session", "mission", "completed", "stalled", "turns", "battles", "attacker_wins", "conquests", "start_time", "duration"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.Session,
			record.Mission,
			strconv.FormatBool(record.Completed),
			strconv.FormatBool(record.Stalled),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Battles),
			strconv.Itoa(record.AttackerWins),
			strconv.Itoa(record.Conquests),
			record.StartTime.Format(time.RFC3339),
			record.GameMetric.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}
