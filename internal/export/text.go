package export

import (
	"fmt"
	"strings"

	"winnidebz1/leadfinder/internal/scraper"
)

// WriteText renders the listings as the plain-text block format used for
// copying a lead list into notes or a message
func WriteText(listings []scraper.Listing) string {
	blocks := make([]string, 0, len(listings))
	for _, l := range listings {
		blocks = append(blocks, fmt.Sprintf(
			"%s\n"+
				"Category: %s\n"+
				"Phone: %s\n"+
				"Address: %s\n"+
				"Rating: %s (%d reviews)\n"+
				"Website: %s\n"+
				"Status: %s\n"+
				"Maps: %s\n"+
				"---",
			l.Name,
			l.Category,
			l.Phone,
			l.Address,
			ratingLabel(l),
			l.ReviewCount,
			l.WebsiteStatus,
			l.ActivityStatus,
			l.DetailURL,
		))
	}
	return strings.Join(blocks, "\n\n")
}
