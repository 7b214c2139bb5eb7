// Package grader turns stored picks into spread-adjusted standings.
package grader

import (
	"math"
	"sort"

	"github.com/nextgenscores/ngsapi/pkg/model/v1model"
)

type Row struct {
	UserID     string
	Name       string
	Correct    int
	Total      int
	Percentage float64
}

// Covers reports whether a pick beat the spread. The pick's side wins only
// when the margin adjusted by the spread strictly favors it; a push (the
// margin exactly cancels the spread) covers for neither side.
func Covers(side string, homePoints, awayPoints int, spread float64) bool {
	adjusted := float64(homePoints-awayPoints) + spread
	switch side {
	case v1model.SideHome:
		return adjusted > 0
	case v1model.SideAway:
		return adjusted < 0
	}
	return false
}

// Standings grades every stored pick and returns one row per user.
//
// Only picks on final games count: a pick whose game is missing or has no
// recorded score is left out of both correct and total. A push still counts
// in total, so it drags the percentage down like a miss; that mirrors how
// this pool has always scored pushes, even though books grade them no-action.
// Rows are ordered by percentage, then total graded picks, then display name.
func Standings(users []v1model.User, picks []v1model.Pick, games map[int64]v1model.Game) []Row {
	picksByUser := make(map[string][]v1model.Pick, len(users))
	for _, pick := range picks {
		picksByUser[pick.UserID] = append(picksByUser[pick.UserID], pick)
	}

	rows := make([]Row, 0, len(users))
	for _, user := range users {
		row := Row{UserID: user.ID, Name: user.DisplayName()}
		for _, pick := range picksByUser[user.ID] {
			game, ok := games[pick.GameID]
			if !ok || !game.Final() {
				continue
			}
			row.Total++
			// Grade against the spread snapshotted at submission, not
			// the game's current line.
			if Covers(pick.Side, *game.HomePoints, *game.AwayPoints, pick.Spread) {
				row.Correct++
			}
		}
		if row.Total > 0 {
			row.Percentage = round3(float64(row.Correct) / float64(row.Total))
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Percentage != rows[j].Percentage {
			return rows[i].Percentage > rows[j].Percentage
		}
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Name < rows[j].Name
	})

	return rows
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
