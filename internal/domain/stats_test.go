package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStats(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]int
		want    Stats
		wantErr error
	}{
		{"empty", map[string]int{}, Stats{}, nil},
		{"all keys", map[string]int{"STR": 1, "DEX": 2, "INT": 3, "LUK": 4, "ATK": 5, "healAmount": 6}, Stats{1, 2, 3, 4, 5, 6}, nil},
		{"negative delta", map[string]int{"ATK": -3}, Stats{ATK: -3}, nil},
		{"unknown key", map[string]int{"MP": 10}, Stats{}, ErrInvalidStat},
		{"wrong case", map[string]int{"str": 10}, Stats{}, ErrInvalidStat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStats(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStats_AddSubRoundTrip(t *testing.T) {
	base := Stats{STR: 5, ATK: 100}
	delta := Stats{STR: 3, DEX: -1, ATK: 12, HealAmount: 50}

	assert.Equal(t, base, base.Add(delta).Sub(delta))
	assert.True(t, delta.Sub(delta).IsZero())
}

func TestStats_JSON(t *testing.T) {
	data, err := json.Marshal(Stats{STR: 2, ATK: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"STR":2,"ATK":5}`, string(data))

	var s Stats
	require.NoError(t, json.Unmarshal([]byte(`{"LUK":7,"healAmount":30}`), &s))
	assert.Equal(t, Stats{LUK: 7, HealAmount: 30}, s)

	err = json.Unmarshal([]byte(`{"MANA":1}`), &s)
	assert.ErrorIs(t, err, ErrInvalidStat)
}

func TestStats_String(t *testing.T) {
	assert.Equal(t, "ATK=5 STR=2", Stats{STR: 2, ATK: 5}.String())
	assert.Equal(t, "", Stats{}.String())
}
