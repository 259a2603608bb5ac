package poker

import (
	"fmt"
	"math/bits"
)

// windowSize is the number of cards in a poker hand proper.
const windowSize = 5

// window is one combination of at most five cards under test.
type window struct {
	size     int
	counts   [13]uint8 // cards per rank
	ranks    uint16    // one bit per rank present
	suits    uint8     // one bit per suit present
	lowRank  uint8
	highRank uint8
	// byCount[n] is how many ranks appear exactly n times.
	byCount [windowSize + 1]uint8
}

func newWindow(cards []Card) window {
	w := window{size: len(cards), lowRank: 12}
	for _, c := range cards {
		r, s := c.Rank(), c.Suit()
		w.counts[r]++
		w.ranks |= 1 << r
		w.suits |= 1 << s
		w.lowRank = min(w.lowRank, r)
		w.highRank = max(w.highRank, r)
	}
	for _, n := range w.counts {
		if n > 0 {
			w.byCount[n]++
		}
	}
	return w
}

// rule pairs a category with the predicate that recognises it.
type rule struct {
	category Category
	matches  func(w *window) bool
}

// rules is ordered strongest first; the first matching rule decides a window.
var rules = [...]rule{
	{StraightFlush, isStraightFlush},
	{FourOfAKind, isFourOfAKind},
	{FullHouse, isFullHouse},
	{Flush, isFlush},
	{Straight, isStraight},
	{ThreeOfAKind, isThreeOfAKind},
	{TwoPair, isTwoPair},
	{OnePair, isOnePair},
	{HighCard, func(*window) bool { return true }},
}

func isStraightFlush(w *window) bool {
	return isFlush(w) && isStraight(w)
}

// Count predicates match exact rank-count shapes, so a short hand only
// qualifies when it has the same shape as the five card hand.

// counts {4,1}
func isFourOfAKind(w *window) bool {
	return w.byCount[4] == 1 && w.byCount[1] == 1
}

// counts {3,2}
func isFullHouse(w *window) bool {
	return w.byCount[3] == 1 && w.byCount[2] == 1
}

func isFlush(w *window) bool {
	return w.size == windowSize && bits.OnesCount8(w.suits) == 1
}

const wheelRanks = 1<<Ace | 1<<Two | 1<<Three | 1<<Four | 1<<Five

func isStraight(w *window) bool {
	if w.size != windowSize || w.byCount[1] != windowSize {
		return false
	}
	return w.highRank-w.lowRank == 4 || w.ranks == wheelRanks
}

// distinct counts exactly {3,1}
func isThreeOfAKind(w *window) bool {
	return w.byCount[3] == 1 && w.byCount[1] >= 1 && w.byCount[2] == 0 && w.byCount[4] == 0
}

// counts {2,2,1}
func isTwoPair(w *window) bool {
	return w.byCount[2] == 2 && w.byCount[1] == 1
}

// some rank appears exactly twice
func isOnePair(w *window) bool {
	return w.byCount[2] >= 1
}

// classify runs the rule table over a single window.
func classify(cards []Card) Category {
	w := newWindow(cards)
	for _, r := range rules {
		if r.matches(&w) {
			return r.category
		}
	}
	return HighCard
}

// Evaluate returns the best category any five card window of h achieves.
// Hands under five cards are evaluated as a single window with the same count
// shapes, so 7c7d7h is High Card and 7c7d2h2s is One Pair; straights and
// flushes cannot occur. An empty hand is High Card; use NewHandChecked or
// ParseHand to reject it before it gets here.
func Evaluate(h Hand) Category {
	cards := h.Cards()
	if len(cards) <= windowSize {
		return classify(cards)
	}

	best := HighCard
	combo := make([]Card, windowSize)
	forEachCombination(len(cards), windowSize, func(idx []int) bool {
		for i, j := range idx {
			combo[i] = cards[j]
		}
		if c := classify(combo); c > best {
			best = c
		}
		return best < StraightFlush
	})
	return best
}

// EvaluateCards validates cards as a hand and evaluates it.
func EvaluateCards(cards []Card) (Category, error) {
	h, err := NewHandChecked(cards...)
	if err != nil {
		return 0, err
	}
	return Evaluate(h), nil
}

// Classify parses card identifiers such as "As", "Td" and evaluates them.
func Classify(ids ...string) (Category, error) {
	h, err := ParseHandIDs(ids)
	if err != nil {
		return 0, fmt.Errorf("classify %v: %w", ids, err)
	}
	return Evaluate(h), nil
}

// forEachCombination calls fn with every k-subset of 0..n-1 in lexicographic
// order. fn returning false stops the walk. The index slice is reused.
func forEachCombination(n, k int, fn func(idx []int) bool) {
	if k > n || k <= 0 {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
