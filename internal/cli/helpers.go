package cli

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

// keyToMove maps a key to a move: a lowercase letter turns that layer
// clockwise, the uppercase letter counter-clockwise.
func keyToMove(key string) (cubesim.Move, bool) {
	r := []rune(key)
	if len(r) != 1 || !unicode.IsLetter(r[0]) {
		return cubesim.Move{}, false
	}
	m, err := cubesim.ParseMove(strings.ToUpper(key))
	if err != nil {
		return cubesim.Move{}, false
	}
	if unicode.IsUpper(r[0]) {
		m = m.Inverse()
	}
	return m, true
}

// tailMoves formats at most n of the most recent moves.
func tailMoves(moves []cubesim.Move, n int) string {
	if len(moves) <= n {
		return cubesim.FormatMoves(moves)
	}
	return "... " + cubesim.FormatMoves(moves[len(moves)-n:])
}
