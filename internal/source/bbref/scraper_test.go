package bbref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertRows(t *testing.T) {
	raw := []map[string]string{
		{
			"player": "LeBron James", "team_id": "LAL", "pos": "PF",
			"g": "71", "mp_per_g": "35.3", "pts_per_g": "25.7",
			"trb_per_g": "7.3", "ast_per_g": "8.3", "tov_per_g": "3.5",
			"fga_per_g": "17.9", "fta_per_g": "5.6", "fg_pct": ".540",
		},
		// repeated header row sneaks through the selector
		{"player": "Player", "g": "G"},
		// rookie with an empty percentage cell
		{"player": "Some Rookie", "team_name_abbr": "SAS", "pos": "C", "g": "3", "fg_pct": ""},
	}

	rows := convertRows(raw)
	require.Len(t, rows, 2)

	lebron := rows[0]
	require.Equal(t, "LeBron James", lebron.name)
	require.Equal(t, "LAL", lebron.team)
	require.Equal(t, "PF", lebron.position)
	require.Equal(t, 25.7, lebron.stats["PTS"])
	require.Contains(t, lebron.stats, "PTS36")

	rookie := rows[1]
	require.Equal(t, "SAS", rookie.team)
	_, ok := rookie.stats["FG_PCT"]
	require.False(t, ok, "empty cells must be left out, not parsed as zero")
}

func TestSeasonURL(t *testing.T) {
	url, err := seasonURL("2023-24")
	require.NoError(t, err)
	require.Equal(t, "https://www.basketball-reference.com/leagues/NBA_2024_per_game.html", url)

	_, err = seasonURL("24")
	require.Error(t, err)
}
