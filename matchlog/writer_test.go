package matchlog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewWriterCreatesRunDirectory(t *testing.T) {
	base := t.TempDir()
	w, err := NewWriter(base)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(w.Dir(), base))
	info, err := os.Stat(w.Dir())
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestWriteRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []Record{
		{ID: "g1", Ruleset: "disc-flip", BoardSize: 8, Winner: "a", Moves: 60, Duration: 12 * time.Millisecond},
		{ID: "g2", Ruleset: "territory-capture", BoardSize: 9, Winner: "draw", Moves: 112, Duration: 37 * time.Millisecond},
	}
	require.NoError(t, w.WriteRecords(records))

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"id", "ruleset", "board_size", "winner", "moves", "duration"}, rows[0])
	require.Equal(t, []string{"g1", "disc-flip", "8", "a", "60", "12ms"}, rows[1])
	require.Equal(t, []string{"g2", "territory-capture", "9", "draw", "112", "37ms"}, rows[2])
}

func TestWriteRecordsEmpty(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.WriteRecords(nil))

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
