package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"chatscope/repositories"
)

// Small maintenance tool: lists the analysis reports stored by the CLI,
// most recent first.
func main() {
	dbPath := flag.String("db", "./badger", "Path to badger DB")
	limit := flag.Int("limit", 20, "Maximum reports to list")
	flag.Parse()

	// Read-only so an analysis run holding the lock does not block us.
	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repo := repositories.NewReportRepository(db, slog.Default())
	if err := listReports(os.Stdout, repo, *limit); err != nil {
		log.Fatal("Error while listing reports: ", err)
	}
}

func listReports(w io.Writer, repo repositories.IReportRepository, limit int) error {
	reports, err := repo.List(limit)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"At", "Messages", "Calls", "Skipped", "Order", "Language", "Top Emojis"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, rep := range reports {
		order := rep.ForecastOrder
		if order == "" {
			order = "-"
		}
		table.Append([]string{
			rep.At.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", rep.Messages),
			fmt.Sprintf("%d", rep.Calls),
			fmt.Sprintf("%d", rep.Skipped),
			order,
			rep.Language,
			strings.Join(rep.TopEmojis, " "),
		})
	}
	table.Render()
	return nil
}
