package game

import "sort"

// Entry is one row of a leaderboard broadcast.
type Entry struct {
	ID    ConnID `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Leaderboard ranks the given player set: score descending, ties broken by
// name ascending. Names are unique within a room so the order is a strict
// function of the input; recomputing on unchanged players yields an
// identical slice. It is recomputed on every change and never cached.
func Leaderboard(players map[ConnID]*Player) []Entry {
	entries := make([]Entry, 0, len(players))
	for _, p := range players {
		entries = append(entries, Entry{ID: p.ID, Name: p.Name, Score: p.Score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
