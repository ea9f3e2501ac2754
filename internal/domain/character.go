package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Character is a playable character owned by a user
type Character struct {
	ID        int64     `json:"characterId"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Health    int       `json:"health"`
	Stats     Stats     `json:"stats"`
	Money     int64     `json:"money"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCharacter returns a character with starting health, attack and money
func NewCharacter(userID, name string) Character {
	return Character{
		UserID: userID,
		Name:   name,
		Health: DefaultCharacterHealth,
		Stats:  Stats{ATK: DefaultCharacterAttack},
		Money:  DefaultCharacterMoney,
	}
}

// IsOwnedBy reports whether userID owns the character
func (c Character) IsOwnedBy(userID string) bool {
	return userID != "" && c.UserID == userID
}

// ApplyStats adds an item's deltas. healAmount goes to health.
func (c Character) ApplyStats(delta Stats) Character {
	c.Health += delta.HealAmount
	delta.HealAmount = 0
	c.Stats = c.Stats.Add(delta)
	return c
}

// RemoveStats reverts ApplyStats for the same delta
func (c Character) RemoveStats(delta Stats) Character {
	return c.ApplyStats(delta.Negate())
}

// Credit returns the character with amount added to its balance.
// Negative amounts and a balance past math.MaxInt64 are rejected.
func (c Character) Credit(amount int64) (Character, error) {
	if amount < 0 {
		return c, fmt.Errorf("%w: negative credit %d", ErrInvalidInput, amount)
	}
	if amount > math.MaxInt64-c.Money {
		return c, fmt.Errorf("%w: balance %d cannot take credit %d", ErrInvalidInput, c.Money, amount)
	}
	c.Money += amount
	return c, nil
}

// Debit returns the character with amount taken from its balance.
// Fails with ErrInsufficientFunds rather than going negative.
func (c Character) Debit(amount int64) (Character, error) {
	if amount < 0 {
		return c, fmt.Errorf("%w: negative debit %d", ErrInvalidInput, amount)
	}
	if c.Money < amount {
		return c, fmt.Errorf("%w: balance %d, required %d", ErrInsufficientFunds, c.Money, amount)
	}
	c.Money -= amount
	return c, nil
}

// CharacterSummary is the public view of a character.
// Money is set only for the owner.
type CharacterSummary struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Attack int    `json:"attack"`
	Money  *int64 `json:"money,omitempty"`
}

// Summary builds the view seen by viewerID (empty for anonymous)
func (c Character) Summary(viewerID string) CharacterSummary {
	s := CharacterSummary{Name: c.Name, Health: c.Health, Attack: c.Stats.ATK}
	if c.IsOwnedBy(viewerID) {
		money := c.Money
		s.Money = &money
	}
	return s
}

// NormalizeName trims and NFC-normalises a character name, then checks its length.
func NormalizeName(name string) (string, error) {
	n := norm.NFC.String(strings.TrimSpace(name))
	length := utf8.RuneCountInString(n)
	if length == 0 {
		return "", fmt.Errorf("%w: character name is required", ErrInvalidInput)
	}
	if length > MaxCharacterNameLength {
		return "", fmt.Errorf("%w: character name exceeds %d characters", ErrInvalidInput, MaxCharacterNameLength)
	}
	return n, nil
}
