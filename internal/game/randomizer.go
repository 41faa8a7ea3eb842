package game

import "math/rand"

// Randomizer chooses the type of each new piece.
type Randomizer interface {
	Next() PieceType
}

// UniformRandomizer picks every piece independently and uniformly from Catalog.
type UniformRandomizer struct {
	rng *rand.Rand
}

func NewUniformRandomizer(seed int64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewSource(seed))}
}

func (u *UniformRandomizer) Next() PieceType {
	return PieceType(Catalog[u.rng.Intn(len(Catalog))])
}

// BagRandomizer produces pieces using the 7-bag system: every run of seven
// pieces contains each type once. Two bags with the same seed produce
// identical sequences.
type BagRandomizer struct {
	rng *rand.Rand
	bag []PieceType
}

func NewBagRandomizer(seed int64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next piece from the bag.
func (b *BagRandomizer) Next() PieceType {
	if len(b.bag) == 0 {
		b.refill()
	}
	t := b.bag[0]
	b.bag = b.bag[1:]
	return t
}

// Peek returns the next piece type without consuming it.
func (b *BagRandomizer) Peek() PieceType {
	if len(b.bag) == 0 {
		b.refill()
	}
	return b.bag[0]
}

func (b *BagRandomizer) refill() {
	b.bag = make([]PieceType, len(Catalog))
	for i := range b.bag {
		b.bag[i] = PieceType(Catalog[i])
	}
	// Fisher-Yates shuffle
	for i := len(b.bag) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
}

// sequence replays a fixed list of pieces, cycling when exhausted.
type sequence struct {
	types []PieceType
	next  int
}

// NewSequence returns a Randomizer that yields types in order, forever.
func NewSequence(types ...PieceType) Randomizer {
	return &sequence{types: types}
}

func (s *sequence) Next() PieceType {
	t := s.types[s.next%len(s.types)]
	s.next++
	return t
}
