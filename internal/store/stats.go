// internal/store/stats.go
//
// Result tallies over the games in a Store.
//
// Counting rules:
//   - Only finished games count as played.
//   - The streak is the run of wins ending at the latest finished game.
//   - The guess distribution counts wins only.

package store

import "context"

// Stats summarizes the finished games in a Store.
type Stats struct {
	Played     int
	Wins       int
	Streak     int         // consecutive wins ending with the latest finished game
	BestStreak int
	Guesses    map[int]int // wins by number of guesses taken
}

// WinRate returns wins as a percentage of games played.
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return 100 * float64(s.Wins) / float64(s.Played)
}

// Tally walks the finished games of st in order. Games still in play are
// not counted.
func Tally(ctx context.Context, st Store) (Stats, error) {
	games, err := st.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	s := Stats{Guesses: make(map[int]int)}
	for _, g := range games {
		if !g.Finished {
			continue
		}
		s.Played++
		if g.Won {
			s.Wins++
			s.Streak++
			s.Guesses[len(g.Guesses)]++
		} else {
			s.Streak = 0
		}
		s.BestStreak = max(s.BestStreak, s.Streak)
	}
	return s, nil
}
