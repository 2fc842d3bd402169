package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		// Valid cards with different suit notations
		{"Ace of Spades Unicode", "A♠", Card{Suit: Spades, Value: Ace}, false},
		{"Ace of Spades lowercase", "As", Card{Suit: Spades, Value: Ace}, false},
		{"Ace of Spades uppercase", "AS", Card{Suit: Spades, Value: Ace}, false},
		{"Ten of Hearts Unicode", "10♥", Card{Suit: Hearts, Value: Ten}, false},
		{"Ten of Hearts lowercase", "10h", Card{Suit: Hearts, Value: Ten}, false},
		{"Queen of Diamonds Unicode", "Q♦", Card{Suit: Diamonds, Value: Queen}, false},
		{"Queen of Diamonds lowercase", "Qd", Card{Suit: Diamonds, Value: Queen}, false},
		{"Two of Clubs Unicode", "2♣", Card{Suit: Clubs, Value: Two}, false},
		{"Two of Clubs uppercase", "2C", Card{Suit: Clubs, Value: Two}, false},
		{"King of Hearts", "Kh", Card{Suit: Hearts, Value: King}, false},
		{"Jack of Hearts", "Jh", Card{Suit: Hearts, Value: Jack}, false},
		{"Nine of Hearts", "9h", Card{Suit: Hearts, Value: Nine}, false},
		{"Input with mixed case", "aS", Card{Suit: Spades, Value: Ace}, false},

		// Invalid inputs
		{"Input with trailing space", "AS ", Card{}, true},
		{"Input with leading space", " AS", Card{}, true},
		{"Too short input", "A", Card{}, true},
		{"Empty input", "", Card{}, true},
		{"Invalid suit", "10X", Card{}, true},
		{"Invalid value", "11S", Card{}, true},
		{"Reverse order", "♠A", Card{}, true},
		{"Special characters", "A$", Card{}, true},
		{"Number too large", "100S", Card{}, true},
		{"Suit only", "♠", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CardFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err, "CardFromString(%q) should return an error", tt.input)
			} else {
				require.NoError(t, err, "CardFromString(%q) should not return an error", tt.input)
				require.Equal(t, tt.want, got, "CardFromString(%q) should return the correct card", tt.input)
			}
		})
	}
}

func TestCard_RankAndPoints(t *testing.T) {
	tests := []struct {
		value  Value
		rank   int
		points int
	}{
		{Ace, 1, 1},
		{Two, 2, 2},
		{Five, 5, 5},
		{Eight, 8, 8},
		{Nine, 9, 9},
		{Ten, 10, 10},
		{Jack, 11, 10},
		{Queen, 12, 10},
		{King, 13, 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			c := Card{Suit: Clubs, Value: tt.value}
			assert.Equal(t, tt.rank, c.Rank())
			assert.Equal(t, tt.points, c.Points())
		})
	}

	assert.Equal(t, 0, Card{}.Rank(), "zero card has no rank")
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "K♦", Card{Suit: Diamonds, Value: King}.String())
	assert.Equal(t, "10♠", Card{Suit: Spades, Value: Ten}.String())
}

func TestMustParse(t *testing.T) {
	stack := MustParse("As", "10h", "K♦")
	require.Len(t, stack, 3)
	assert.Equal(t, Card{Suit: Spades, Value: Ace}, stack[0])
	assert.Equal(t, Card{Suit: Hearts, Value: Ten}, stack[1])
	assert.Equal(t, Card{Suit: Diamonds, Value: King}, stack[2])

	assert.Panics(t, func() { MustParse("1X") })
}
