package rps

import "github.com/rocketscienceinc/rps-strategy-guide/internal/entity"

// Beats - the move that m defeats: rock blunts scissor, scissor cuts paper, paper covers rock.
// Returns the zero Move for an invalid m.
func Beats(m entity.Move) entity.Move {
	switch m {
	case entity.Rock:
		return entity.Scissor
	case entity.Scissor:
		return entity.Paper
	case entity.Paper:
		return entity.Rock
	default:
		return 0
	}
}

// BeatenBy - the move that defeats m.
func BeatenBy(m entity.Move) entity.Move {
	// the cycle has length three, so stepping twice walks it backwards
	return Beats(Beats(m))
}

// Resolve - the outcome of a round for the player, given both moves.
// Returns the zero Outcome if either move is invalid.
func Resolve(opponent, player entity.Move) entity.Outcome {
	if !opponent.IsValid() || !player.IsValid() {
		return 0
	}

	switch opponent {
	case player:
		return entity.Draw
	case Beats(player):
		return entity.Win
	default:
		return entity.Lose
	}
}

// Derive - the move the player must choose to reach the desired outcome against opponent.
// Returns the zero Move if either argument is invalid.
func Derive(opponent entity.Move, desired entity.Outcome) entity.Move {
	if !opponent.IsValid() {
		return 0
	}

	switch desired {
	case entity.Draw:
		return opponent
	case entity.Win:
		return BeatenBy(opponent)
	case entity.Lose:
		return Beats(opponent)
	default:
		return 0
	}
}
