package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Card represents a single card as one bit of a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs], rank 0 (deuce) lowest.
type Card uint64

// Hand is a set of cards. Multiple cards are multiple bits, so a Hand can
// never hold the same card twice.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// MaxHandSize is the largest hand the evaluator accepts.
const MaxHandSize = 7

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
	deckMask  = (uint64(1) << 52) - 1
)

var (
	// ErrMalformedCard reports an identifier that is not one of the 52 cards.
	ErrMalformedCard = errors.New("malformed card")
	// ErrHandSize reports a hand with fewer than 1 or more than MaxHandSize cards.
	ErrHandSize = errors.New("invalid hand size")
	// ErrDuplicateCard reports the same card appearing twice in one hand.
	ErrDuplicateCard = errors.New("duplicate card")
)

// NewCard creates a card from rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (uint(suit)*13 + uint(rank))
}

// Valid reports whether c is exactly one of the 52 cards.
func (c Card) Valid() bool {
	return c != 0 && uint64(c)&^deckMask == 0 && bits.OnesCount64(uint64(c)) == 1
}

func (c Card) bitPosition() uint8 {
	if !c.Valid() {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12), or 255 for an invalid card.
func (c Card) Rank() uint8 {
	pos := c.bitPosition()
	if pos == 255 {
		return 255
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3), or 255 for an invalid card.
func (c Card) Suit() uint8 {
	pos := c.bitPosition()
	if pos == 255 {
		return 255
	}
	return pos / 13
}

// Index returns the card's position in the rank-major deck ordering used by
// feature encoding: 2c=0, 2d=1, 2h=2, 2s=3, 3c=4, ... As=51.
// Invalid cards return -1.
func (c Card) Index() int {
	if !c.Valid() {
		return -1
	}
	return int(c.Rank())*4 + int(c.Suit())
}

// String returns the two character form, e.g. "As", "Td".
func (c Card) String() string {
	rank, suit := c.Rank(), c.Suit()
	if rank > 12 || suit > 3 {
		return "??"
	}
	return string(rankChars[rank]) + string(suitChars[suit])
}

// CardFromIndex is the inverse of Card.Index.
func CardFromIndex(i int) (Card, error) {
	if i < 0 || i > 51 {
		return 0, fmt.Errorf("%w: deck index %d out of range", ErrMalformedCard, i)
	}
	return NewCard(uint8(i/4), uint8(i%4)), nil
}

// ParseCard parses a string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCard, s)
	}
	rank, err := parseRank(s[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedCard, s, err)
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedCard, s, err)
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a run of card notation such as "AsKsQs" or "As Ks Qs".
// It does not check for duplicates; use ParseHand for that.
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd card string length %d", ErrMalformedCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (uint8, error) {
	switch c {
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
}

func parseSuit(c byte) (uint8, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}

// NewHand creates a hand from multiple cards without validation.
// Repeated cards collapse into one.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// NewHandChecked builds a hand from 1 to MaxHandSize distinct, valid cards.
func NewHandChecked(cards ...Card) (Hand, error) {
	if len(cards) < 1 || len(cards) > MaxHandSize {
		return 0, fmt.Errorf("%w: %d cards, want 1-%d", ErrHandSize, len(cards), MaxHandSize)
	}
	var h Hand
	for _, c := range cards {
		if !c.Valid() {
			return 0, fmt.Errorf("%w: invalid card value %#x", ErrMalformedCard, uint64(c))
		}
		if h.HasCard(c) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		h.AddCard(c)
	}
	return h, nil
}

// ParseHand parses card notation ("AsKd7h" or "As Kd 7h") into a validated hand.
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return 0, err
	}
	return NewHandChecked(cards...)
}

// ParseHandIDs parses one identifier per element into a validated hand.
func ParseHandIDs(ids []string) (Hand, error) {
	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		card, err := ParseCard(strings.TrimSpace(id))
		if err != nil {
			return 0, err
		}
		cards = append(cards, card)
	}
	return NewHandChecked(cards...)
}

// HandFromIndices builds a validated hand from deck indices (see Card.Index).
func HandFromIndices(indices ...int) (Hand, error) {
	cards := make([]Card, 0, len(indices))
	for _, i := range indices {
		card, err := CardFromIndex(i)
		if err != nil {
			return 0, err
		}
		cards = append(cards, card)
	}
	return NewHandChecked(cards...)
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// Cards returns the cards of the hand in bit order (clubs first, deuce first).
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rest := uint64(h) & deckMask; rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(rest&-rest))
	}
	return cards
}

// String returns the cards separated by spaces.
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
