package bitchess

import (
	"math/rand"

	"golang.org/x/exp/slices"
)

// Policy chooses one move from a list of legal moves for the given
// position. Implementations must return NullMove iff the list is empty and
// must not retain or mutate the board.
type Policy interface {
	Select(b *Board, legal []Move) Move
}

// RandomPolicy picks uniformly among the legal moves.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy returns a uniform-random policy seeded deterministically.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

// Select returns a uniformly random legal move, or NullMove when there is
// none.
func (p *RandomPolicy) Select(_ *Board, legal []Move) Move {
	if len(legal) == 0 {
		return NullMove
	}
	return legal[p.rng.Intn(len(legal))]
}

// WeightedPolicy samples moves with probability proportional to a cheap
// heuristic weight favoring captures, promotions, checks, and early
// development.
type WeightedPolicy struct {
	rng *rand.Rand
}

// NewWeightedPolicy returns a heuristic-weighted policy seeded
// deterministically.
func NewWeightedPolicy(seed int64) *WeightedPolicy {
	return &WeightedPolicy{rng: rand.New(rand.NewSource(seed))}
}

type weightedMove struct {
	move   Move
	weight int
}

// Select draws one move from the weighted distribution, or NullMove when
// the list is empty.
func (p *WeightedPolicy) Select(b *Board, legal []Move) Move {
	if len(legal) == 0 {
		return NullMove
	}

	weighted := make([]weightedMove, 0, len(legal))
	total := 0
	for _, m := range legal {
		w := moveWeight(b, m)
		weighted = append(weighted, weightedMove{move: m, weight: w})
		total += w
	}
	slices.SortFunc(weighted, func(a, b weightedMove) int { return b.weight - a.weight })

	pick := p.rng.Intn(total)
	for _, wm := range weighted {
		pick -= wm.weight
		if pick < 0 {
			return wm.move
		}
	}
	return weighted[len(weighted)-1].move
}

// moveWeight scores a legal move for the weighted policy: material values
// scaled by ten plus bonuses for promotion, check, mate, and early
// center-pawn development.
func moveWeight(b *Board, m Move) int {
	weight := 10

	moving, _ := b.PieceAt(m.From)
	captured, _ := b.PieceAt(m.To)

	if captured != NoPieceType {
		weight += PieceValue[captured] * 10
	}

	if moving == Pawn && m.Promotion != NoPieceType {
		switch m.Promotion {
		case Queen:
			weight += 80
		case Rook:
			weight += 40
		case Bishop, Knight:
			weight += 20
		}
	} else {
		switch moving {
		case Knight:
			weight += 25
		case Bishop, Rook:
			weight += 20
		case Queen:
			weight += 15
		case Pawn:
			// Push pawns in the opening, center pawns first.
			if b.fullmoveNumber <= 5 {
				weight += 50 - b.fullmoveNumber*10
				if file := m.From.File(); file == 3 || file == 4 {
					weight += 20
				}
			}
		}
	}

	trial := *b
	if trial.MakeMove(m) {
		if trial.InCheck(trial.SideToMove()) {
			weight += 40
			if trial.IsCheckmate() {
				weight += 1000
			}
		}
	}

	return weight
}
