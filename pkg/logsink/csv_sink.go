package logsink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

var csvHeader = []string{
	"timestamp", "session_id", "name", "email", "company", "phone", "country",
	"question", "response", "intent", "handoff_triggered", "message_number", "booking_ref",
}

// CSVSink appends one row per turn to a local CSV file, writing the header
// only when the file is created.
type CSVSink struct {
	mu   sync.Mutex
	path string
}

func NewCSVSink(path string) (*CSVSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return &CSVSink{path: path}, nil
}

// Path returns the location of the CSV file (used by the admin export).
func (s *CSVSink) Path() string {
	return s.path
}

func (s *CSVSink) Append(ctx context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, statErr := os.Stat(s.path)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	row := []string{
		record.Timestamp.UTC().Format(time.RFC3339),
		record.SessionID,
		record.Contact.Name,
		record.Contact.Email,
		record.Contact.Company,
		record.Contact.Phone,
		record.Contact.Country,
		record.Question,
		record.Response,
		record.Intent,
		strconv.FormatBool(record.HandoffTriggered),
		strconv.Itoa(record.MessageNumber),
		record.BookingRef,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	w.Flush()
	return w.Error()
}
