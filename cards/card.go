package cards

import (
	"fmt"
	"strings"
)

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Value: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	suit, rest, ok := splitSuit(s)
	if !ok {
		return Card{}, fmt.Errorf("invalid card suit: %s", s)
	}

	value := Value(strings.ToUpper(rest))
	if _, ok := ranks[value]; !ok {
		return Card{}, fmt.Errorf("invalid card value: %s", rest)
	}

	return Card{Suit: suit, Value: value}, nil
}

// MustParse is CardFromString for literals known to be valid. It panics otherwise.
func MustParse(shorthands ...string) Stack {
	stack := make(Stack, 0, len(shorthands))
	for _, s := range shorthands {
		c, err := CardFromString(s)
		if err != nil {
			panic(err)
		}
		stack = append(stack, c)
	}
	return stack
}

func splitSuit(s string) (Suit, string, bool) {
	for _, suit := range Suits {
		if rest, found := strings.CutSuffix(s, string(suit)); found {
			return suit, rest, true
		}
	}

	rest := s[:len(s)-1]
	switch s[len(s)-1] {
	case 's', 'S':
		return Spades, rest, true
	case 'h', 'H':
		return Hearts, rest, true
	case 'd', 'D':
		return Diamonds, rest, true
	case 'c', 'C':
		return Clubs, rest, true
	}
	return "", "", false
}

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists the four suits in dealing order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Value represents a card value
type Value string

const (
	Ace   Value = "A"
	King  Value = "K"
	Queen Value = "Q"
	Jack  Value = "J"
	Ten   Value = "10"
	Nine  Value = "9"
	Eight Value = "8"
	Seven Value = "7"
	Six   Value = "6"
	Five  Value = "5"
	Four  Value = "4"
	Three Value = "3"
	Two   Value = "2"
)

// Values lists the thirteen values from Ace (rank 1) to King (rank 13).
var Values = []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var ranks = map[Value]int{
	Ace:   1,
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  11,
	Queen: 12,
	King:  13,
}

// Card represents a playing card
type Card struct {
	Suit  Suit
	Value Value
}

// String returns the abbreviation of a card, e.g. "K♦"
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

// Rank returns the raw rank of the card, 1 (Ace) through 13 (King).
// It returns 0 for the zero Card.
func (c Card) Rank() int {
	return ranks[c.Value]
}

// Points returns the baccarat value of the card: face cards and tens count 10.
func (c Card) Points() int {
	return min(c.Rank(), 10)
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Value == other.Value
}

// IsZero reports whether c is the zero Card.
func (c Card) IsZero() bool {
	return c.Suit == "" && c.Value == ""
}
