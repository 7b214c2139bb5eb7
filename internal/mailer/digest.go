package mailer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
)

// BuildScheduleHTML renders the weekly schedule digest as an HTML table.
func BuildScheduleHTML(conference string, games []v1model.Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s Game Schedule</h2>", html.EscapeString(conference))
	b.WriteString(`<table border="1" cellpadding="5" cellspacing="0">`)
	b.WriteString(`<tr><th>Week</th><th>Date</th><th>Away Team</th><th>Home Team</th><th>Spread</th><th>Over/Under</th></tr>`)

	for _, g := range games {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			g.Week,
			formatDate(g.StartDate),
			html.EscapeString(g.AwayTeam),
			html.EscapeString(g.HomeTeam),
			formatLine(g.Spread),
			formatLine(g.OverUnder),
		)
	}

	b.WriteString("</table>")
	return b.String()
}

func formatLine(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *v)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "TBD"
	}
	return t.Format("Jan 2, 2006")
}
