package source

// Derived advanced metrics computed from the basic per-game line.
// Per-36 numbers need minutes, true shooting needs shot volume; a stat
// that cannot be computed is simply not added, the renderer shows N/A.
const (
	KeyPTS36 = "PTS36"
	KeyREB36 = "REB36"
	KeyAST36 = "AST36"
	KeyTSPct = "TS_PCT"
)

// Derive extends a basic stat line with the advanced metrics. The input
// map is modified in place and returned.
func Derive(stats map[string]float64) map[string]float64 {
	min, hasMin := stats["MIN"]
	if hasMin && min > 0 {
		if pts, ok := stats["PTS"]; ok {
			stats[KeyPTS36] = pts / min * 36
		}
		if reb, ok := stats["REB"]; ok {
			stats[KeyREB36] = reb / min * 36
		}
		if ast, ok := stats["AST"]; ok {
			stats[KeyAST36] = ast / min * 36
		}
	}

	pts, hasPts := stats["PTS"]
	fga, hasFga := stats["FGA"]
	fta, hasFta := stats["FTA"]
	if hasPts && hasFga && hasFta {
		denom := 2 * (fga + 0.44*fta)
		if denom > 0 {
			stats[KeyTSPct] = pts / denom
		}
	}
	return stats
}
