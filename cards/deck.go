package cards

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// NewDeck52 creates a standard deck of 52 cards, ordered by rank then suit
func NewDeck52() Stack {
	deck := make(Stack, 0, DeckSize)
	for _, value := range Values {
		for _, suit := range Suits {
			deck.AddCard(Card{Suit: suit, Value: value})
		}
	}
	return deck
}
