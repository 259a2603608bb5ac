package poker

import "fmt"

// Category is the class of the best five card hand, ordered from weakest to
// strongest. The zero value is not a valid category.
type Category uint8

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories lists every category the evaluator can produce, weakest first.
var Categories = [...]Category{
	HighCard,
	OnePair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	Flush,
	FullHouse,
	FourOfAKind,
	StraightFlush,
}

// String returns the label the fold model was trained with.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pairs"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the nine categories.
func (c Category) Valid() bool {
	return c >= HighCard && c <= StraightFlush
}

// Strength returns the category's position in the ordering, 1 (high card)
// through 9 (straight flush).
func (c Category) Strength() int {
	return int(c)
}

// Compare returns 1 if c is stronger than other, -1 if weaker and 0 if equal.
func (c Category) Compare(other Category) int {
	switch {
	case c > other:
		return 1
	case c < other:
		return -1
	}
	return 0
}

// ParseCategory maps a label back to its category.
func ParseCategory(label string) (Category, error) {
	for _, c := range Categories {
		if c.String() == label {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", label)
}
