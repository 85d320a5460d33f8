package engine

import "sort"

// StandingEntry ranks one player at the end of the game.
type StandingEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Landmarks  int    `json:"landmarks"`
	Money      int    `json:"money"`
	Cards      int    `json:"cards"`
	Winner     bool   `json:"winner"`
}

// Standings ranks players by constructed landmarks, then coins, then
// establishments. Tied players share a rank.
func (g *Game) Standings() []StandingEntry {
	entries := make([]StandingEntry, len(g.Players))
	for i, p := range g.Players {
		entries[i] = StandingEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Landmarks:  p.ConstructedCount(),
			Money:      p.Money,
			Cards:      len(p.cards),
			Winner:     p.HasWon(),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Winner != b.Winner {
			return a.Winner
		}
		if a.Landmarks != b.Landmarks {
			return a.Landmarks > b.Landmarks
		}
		if a.Money != b.Money {
			return a.Money > b.Money
		}
		return a.Cards > b.Cards
	})

	for i := range entries {
		if i > 0 && sameStanding(entries[i-1], entries[i]) {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}
	return entries
}

func sameStanding(a, b StandingEntry) bool {
	return a.Winner == b.Winner && a.Landmarks == b.Landmarks && a.Money == b.Money && a.Cards == b.Cards
}
