package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Stat keys accepted in item definitions
const (
	StatSTR        = "STR"
	StatDEX        = "DEX"
	StatINT        = "INT"
	StatLUK        = "LUK"
	StatATK        = "ATK"
	StatHealAmount = "healAmount"
)

// ValidStatKeys lists every stat an item may carry, in wire order.
var ValidStatKeys = []string{StatSTR, StatDEX, StatINT, StatLUK, StatATK, StatHealAmount}

// Stats is the fixed stat vector shared by items (as deltas) and characters.
// It serializes as a sparse object: {"STR": 3, "ATK": 10}.
type Stats struct {
	STR        int
	DEX        int
	INT        int
	LUK        int
	ATK        int
	HealAmount int
}

// ParseStats builds a Stats vector from a key/value map, rejecting unknown keys.
func ParseStats(m map[string]int) (Stats, error) {
	var s Stats
	for key, value := range m {
		switch key {
		case StatSTR:
			s.STR = value
		case StatDEX:
			s.DEX = value
		case StatINT:
			s.INT = value
		case StatLUK:
			s.LUK = value
		case StatATK:
			s.ATK = value
		case StatHealAmount:
			s.HealAmount = value
		default:
			return Stats{}, fmt.Errorf("%w: %s", ErrInvalidStat, key)
		}
	}
	return s, nil
}

// Map returns the non-zero components keyed by stat name.
func (s Stats) Map() map[string]int {
	m := make(map[string]int, len(ValidStatKeys))
	for _, kv := range []struct {
		key   string
		value int
	}{
		{StatSTR, s.STR},
		{StatDEX, s.DEX},
		{StatINT, s.INT},
		{StatLUK, s.LUK},
		{StatATK, s.ATK},
		{StatHealAmount, s.HealAmount},
	} {
		if kv.value != 0 {
			m[kv.key] = kv.value
		}
	}
	return m
}

// Add returns the element-wise sum.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		STR:        s.STR + o.STR,
		DEX:        s.DEX + o.DEX,
		INT:        s.INT + o.INT,
		LUK:        s.LUK + o.LUK,
		ATK:        s.ATK + o.ATK,
		HealAmount: s.HealAmount + o.HealAmount,
	}
}

// Sub returns the element-wise difference.
func (s Stats) Sub(o Stats) Stats {
	return s.Add(o.Negate())
}

// Negate flips the sign of every component.
func (s Stats) Negate() Stats {
	return Stats{
		STR:        -s.STR,
		DEX:        -s.DEX,
		INT:        -s.INT,
		LUK:        -s.LUK,
		ATK:        -s.ATK,
		HealAmount: -s.HealAmount,
	}
}

// IsZero reports whether every component is zero.
func (s Stats) IsZero() bool {
	return s == Stats{}
}

// MarshalJSON encodes only non-zero stats.
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// UnmarshalJSON decodes a sparse stat object and validates its keys.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStat, err)
	}
	parsed, err := ParseStats(m)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// String renders stats in a stable order, e.g. "ATK=5 STR=2".
func (s Stats) String() string {
	m := s.Map()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", k, m[k])
	}
	return out
}
