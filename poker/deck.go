package poker

import (
	rand "math/rand/v2"
)

// Deck represents a standard 52-card deck
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck. A nil rng uses the global source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	for i := range d.cards {
		d.cards[i], _ = CardFromIndex(i)
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates and starts dealing from the top.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
// The returned slice aliases the deck and is only valid until the next Shuffle.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || n > d.CardsRemaining() {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealHand deals n cards as a hand.
func (d *Deck) DealHand(n int) (Hand, bool) {
	cards := d.Deal(n)
	if cards == nil {
		return 0, false
	}
	return NewHand(cards...), true
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
