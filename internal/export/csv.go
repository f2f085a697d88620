package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"winnidebz1/leadfinder/internal/scraper"
)

// Column order matches the lead table users work with downstream
var csvHeader = []string{
	"Business Name",
	"Category",
	"Phone",
	"Address",
	"Rating",
	"Reviews",
	"Website Status",
	"Activity Status",
	"Google Maps URL",
	"Scraped At",
}

// WriteCSV writes the listings as CSV, header row included
func WriteCSV(w io.Writer, listings []scraper.Listing) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, l := range listings {
		row := []string{
			l.Name,
			l.Category,
			l.Phone,
			l.Address,
			ratingLabel(l),
			strconv.Itoa(l.ReviewCount),
			l.WebsiteStatus,
			l.ActivityStatus,
			l.DetailURL,
			l.ScrapedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVFileName returns the dated export file name, e.g. leads_2026-08-30.csv
func CSVFileName(at time.Time) string {
	return fmt.Sprintf("leads_%s.csv", at.Format("2006-01-02"))
}

func ratingLabel(l scraper.Listing) string {
	if l.Rating == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*l.Rating, 'f', -1, 64)
}
