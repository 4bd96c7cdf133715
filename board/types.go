// Package board implements the Connect-Four grid, token lifecycle and round state machine.
package board

// Player is a cell owner, the sign doubles as the turn value
type Player int8

const (
	Empty     Player = 0
	PlayerOne Player = 1
	PlayerTwo Player = -1
)

// Other returns the opponent, Empty stays Empty
func (p Player) Other() Player {
	return -p
}

// Index maps players to score slots, -1 for Empty
func (p Player) Index() int {
	switch p {
	case PlayerOne:
		return 0
	case PlayerTwo:
		return 1
	default:
		return -1
	}
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	default:
		return "empty"
	}
}

// Cell addresses the grid, row 0 is the top
type Cell struct {
	Row, Col int
}

// Outcome is the result of a placement attempt
type Outcome uint8

const (
	OutcomePlaced Outcome = iota
	OutcomePlacedAndWon
	OutcomePlacedAndTied
	OutcomeInvalidFullColumn
	OutcomeRejected // column out of range or round over
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaced:
		return "placed"
	case OutcomePlacedAndWon:
		return "placed_and_won"
	case OutcomePlacedAndTied:
		return "placed_and_tied"
	case OutcomeInvalidFullColumn:
		return "invalid_full_column"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Accepted reports the placement wrote a cell
func (o Outcome) Accepted() bool {
	return o == OutcomePlaced || o == OutcomePlacedAndWon || o == OutcomePlacedAndTied
}

// State is the round lifecycle
type State uint8

const (
	StatePlaying   State = iota
	StateWon             // winning line blinking
	StateTied            // full board, waiting to clear
	StateResetting       // tokens fading out
	StateExpired         // teardown elapsed, owner rebuilds
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateTied:
		return "tied"
	case StateResetting:
		return "resetting"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Score counts wins per player, indexed by Player.Index
type Score [2]int

// Add credits one win to p
func (s *Score) Add(p Player) {
	if i := p.Index(); i >= 0 {
		s[i]++
	}
}

// Get returns p's wins
func (s *Score) Get(p Player) int {
	if i := p.Index(); i >= 0 {
		return s[i]
	}
	return 0
}

// Reset zeroes both counters
func (s *Score) Reset() {
	*s = Score{}
}
