package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_DealCards(t *testing.T) {
	card1 := Card{Suit: Clubs, Value: Ace}
	card2 := Card{Suit: Diamonds, Value: Two}
	card3 := Card{Suit: Hearts, Value: King}
	stack := NewStack(card1, card2, card3)

	dealtCards := stack.DealCards(2)

	assert.Len(t, dealtCards, 2, "Expected 2 cards to be dealt")
	assert.Equal(t, card1, dealtCards[0], "Expected first dealt card to be card1")
	assert.Equal(t, card2, dealtCards[1], "Expected second dealt card to be card2")
	assert.Len(t, stack, 1, "Expected stack to have 1 card remaining")
	assert.Equal(t, card3, stack[0], "Expected remaining card to be card3")
}

func TestStack_DealCards_MoreThanAvailable(t *testing.T) {
	stack := NewStack(Card{Suit: Clubs, Value: Ace})

	dealtCards := stack.DealCards(5)

	assert.Len(t, dealtCards, 1)
	assert.True(t, stack.IsEmpty())
}

func TestStack_DealCard(t *testing.T) {
	card1 := Card{Suit: Clubs, Value: Ace}
	card2 := Card{Suit: Diamonds, Value: Two}
	stack := NewStack(card1, card2)

	dealtCard := stack.DealCard()

	assert.Equal(t, card1, dealtCard, "Expected dealt card to be card1")
	assert.Len(t, stack, 1, "Expected stack to have 1 card remaining")
	assert.Equal(t, card2, stack[0], "Expected remaining card to be card2")

	stack.DealCard()
	assert.True(t, stack.DealCard().IsZero(), "Dealing from an empty stack gives the zero card")
}

func TestStack_AddCards(t *testing.T) {
	stack := NewStack()
	card1 := Card{Suit: Clubs, Value: Ace}
	card2 := Card{Suit: Diamonds, Value: Two}

	stack.AddCard(card1)
	stack.AddCards(card2, card1)

	assert.Len(t, stack, 3, "Expected stack to have 3 cards")
	assert.Equal(t, card1, stack[0])
	assert.Equal(t, card2, stack[1])
	assert.Equal(t, 2, stack.Count(card1))
}

func TestStack_Empty(t *testing.T) {
	stack := MustParse("As", "2d")

	removed := stack.Empty()

	assert.Len(t, removed, 2)
	assert.True(t, stack.IsEmpty())
}

func TestStack_Points(t *testing.T) {
	tests := []struct {
		name  string
		stack Stack
		want  int
	}{
		{"empty", NewStack(), 0},
		{"ace and two", MustParse("As", "2h"), 3},
		{"nine and king", MustParse("9c", "Kd"), 19},
		{"three faces", MustParse("Js", "Qh", "Kd"), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stack.Points())
		})
	}
}

func TestStack_String(t *testing.T) {
	stack := NewStack(Card{Suit: Clubs, Value: Ace}, Card{Suit: Diamonds, Value: Two})

	assert.Equal(t, "A♣ 2♦", stack.String(), "Expected string representation to be equal to expectedString")
}

func TestStack_Clone(t *testing.T) {
	stack := MustParse("As", "2d")
	clone := stack.Clone()
	clone[0] = Card{Suit: Hearts, Value: King}

	assert.Equal(t, Card{Suit: Spades, Value: Ace}, stack[0], "Clone must not share memory")
}
