package games

import domaingames "nba-scores-dashboard/internal/domain/games"

// Filter keeps games where either team's display name is in names, preserving
// order, and reports the unfiltered count. An empty names list keeps everything.
// The input slice is never modified.
func Filter(games []domaingames.Game, names []string) ([]domaingames.Game, int) {
	total := len(games)
	if len(names) == 0 {
		return games, total
	}

	allowed := make(map[string]struct{}, len(names))
	for _, name := range names {
		allowed[name] = struct{}{}
	}

	out := make([]domaingames.Game, 0, len(games))
	for _, g := range games {
		_, home := allowed[g.Home.Team.DisplayName]
		_, away := allowed[g.Away.Team.DisplayName]
		if home || away {
			out = append(out, g)
		}
	}
	return out, total
}
