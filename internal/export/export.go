// Package export writes ledger data as CSV for use in spreadsheets or
// other tooling. The snapshot file owned by the store stays the source of
// truth; exports are one-way.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"tallybook/internal/dateutils"
	"tallybook/internal/fileutils"
	"tallybook/internal/ledger"
	"tallybook/internal/logging"
	"tallybook/internal/models"
)

// HistoryRow is the CSV shape of one audit entry.
type HistoryRow struct {
	Customer    string `csv:"Customer"`
	Type        string `csv:"Type"`
	Amount      string `csv:"Amount"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
}

// CustomerRow is the CSV shape of one customer summary line.
type CustomerRow struct {
	Name          string `csv:"Name"`
	Phone         string `csv:"Phone"`
	Balance       string `csv:"Balance"`
	Status        string `csv:"Status"`
	NextDueDate   string `csv:"NextDueDate"`
	LastPaymentAt string `csv:"LastPaymentAt"`
}

// Exporter writes CSV files with a configurable delimiter.
type Exporter struct {
	delimiter rune
	log       logging.Logger
	clock     ledger.Clock
}

// New creates an exporter. An empty delimiter defaults to comma; a nil
// clock defaults to time.Now.
func New(delimiter string, log logging.Logger, clock ledger.Clock) *Exporter {
	delim := ','
	if delimiter != "" {
		delim = []rune(delimiter)[0]
	}
	if clock == nil {
		clock = time.Now
	}
	return &Exporter{delimiter: delim, log: log, clock: clock}
}

// WriteHistoryCSV writes a customer's audit trail, newest first.
func (ex *Exporter) WriteHistoryCSV(c *models.Customer, csvFile string) error {
	rows := make([]HistoryRow, 0, len(c.History))
	for _, entry := range ledger.HistoryByDateDesc(c) {
		rows = append(rows, HistoryRow{
			Customer:    c.Name,
			Type:        string(entry.Type),
			Amount:      models.FormatAmount(entry.Amount),
			Date:        dateutils.ToISODate(entry.Date),
			Description: entry.Description,
		})
	}
	return ex.writeCSV(rows, csvFile, len(rows))
}

// WriteCustomersCSV writes a summary line per customer, most recently
// active first.
func (ex *Exporter) WriteCustomersCSV(s *models.Snapshot, csvFile string) error {
	today := ex.clock()
	customers := ledger.CustomersByActivity(s)
	rows := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		info := ledger.CustomerDueInfo(c, today)
		row := CustomerRow{
			Name:    c.Name,
			Phone:   c.Phone,
			Balance: models.FormatAmount(ledger.CustomerBalance(c)),
			Status:  string(info.Status),
		}
		if info.NextDueDate != nil {
			row.NextDueDate = dateutils.ToISODate(*info.NextDueDate)
		}
		if !c.LastPaymentAt.IsZero() {
			row.LastPaymentAt = dateutils.ToISODate(c.LastPaymentAt)
		}
		rows = append(rows, row)
	}
	return ex.writeCSV(rows, csvFile, len(rows))
}

func (ex *Exporter) writeCSV(rows interface{}, csvFile string, count int) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			ex.log.WithError(err).Warn("failed to close CSV file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = ex.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	ex.log.Info("CSV export written",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, count))
	return nil
}
