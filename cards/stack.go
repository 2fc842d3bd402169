package cards

import "strings"

// Stack represents an ordered pile of cards. The top of the stack is index 0.
type Stack []Card

// NewStack creates a new stack from the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// DealCard removes and returns the top card. It returns the zero Card on an empty stack.
func (s *Stack) DealCard() Card {
	if len(*s) == 0 {
		return Card{}
	}
	card := (*s)[0]
	*s = (*s)[1:]
	return card
}

// DealCards removes and returns up to count cards from the top
func (s *Stack) DealCards(count int) Stack {
	if count > len(*s) {
		count = len(*s)
	}
	dealt := make(Stack, count)
	copy(dealt, (*s)[:count])
	*s = (*s)[count:]
	return dealt
}

// AddCard puts a card at the bottom of the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards puts cards at the bottom of the stack, in order
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// Empty removes every card and returns them
func (s *Stack) Empty() Stack {
	cards := *s
	*s = Stack{}
	return cards
}

// Points returns the sum of baccarat points of the stack
func (s Stack) Points() int {
	total := 0
	for _, c := range s {
		total += c.Points()
	}
	return total
}

// Count returns how many copies of card the stack holds
func (s Stack) Count(card Card) int {
	n := 0
	for _, c := range s {
		if c.Equals(card) {
			n++
		}
	}
	return n
}

func (s Stack) String() string {
	abbreviations := make([]string, len(s))
	for i, c := range s {
		abbreviations[i] = c.String()
	}
	return strings.Join(abbreviations, " ")
}

// IsEmpty reports whether the stack holds no cards
func (s Stack) IsEmpty() bool {
	return len(s) == 0
}

// Clone returns a copy of the stack that shares no memory with it
func (s Stack) Clone() Stack {
	clone := make(Stack, len(s))
	copy(clone, s)
	return clone
}
