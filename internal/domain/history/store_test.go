package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/SciCalc/backend/internal/infrastructure/storage"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db.SQL())
}

func seed(t *testing.T, s *Store, exprs ...string) {
	t.Helper()
	for i, e := range exprs {
		_, err := s.Append(context.Background(), Entry{Expression: e, Unit: "deg", Precision: 2, Result: float64(i)})
		require.NoError(t, err)
	}
}

func TestAppendAndList(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	entry, err := s.Append(ctx, Entry{Expression: "10/3", Unit: "rad", Precision: 2, Result: 3.33})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Equal(t, "10/3 = 3.33", entry.String())

	seed(t, s, "a", "b", "c")

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "10/3", all[0].Expression)
	assert.Equal(t, entry.ID, all[0].ID)
	assert.Equal(t, "c", all[3].Expression)

	recent, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "b", recent[0].Expression)
	assert.Equal(t, "c", recent[1].Expression)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestClear(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()
	seed(t, s, "1+1", "2+2")

	removed, err := s.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	entries, err := s.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExport(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()
	seed(t, s, "sin(30)", "2^10")

	decoders := map[Format]func([]byte, interface{}) error{
		FormatJSON: sonic.Unmarshal,
		FormatYAML: func(data []byte, v interface{}) error { return yaml.Unmarshal(data, v) },
		FormatTOML: toml.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			data, err := s.Export(ctx, format)
			require.NoError(t, err)

			var doc Document
			require.NoError(t, decode(data, &doc))
			assert.Equal(t, 2, doc.Count)
			require.Len(t, doc.Entries, 2)
			assert.Equal(t, "sin(30)", doc.Entries[0].Expression)
			assert.Equal(t, "2^10 = 1", doc.Entries[1].Text)
			assert.Equal(t, 1.0, doc.Entries[1].Result)
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	data, err := Encode(nil, FormatJSON, now)
	require.NoError(t, err)
	assert.JSONEq(t, `{"exported":"2024-01-02T03:04:05Z","count":0,"entries":[]}`, string(data))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "application/toml", FormatTOML.ContentType())
}
