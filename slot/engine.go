package slot

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ReelCount is the number of symbols drawn per spin round.
const ReelCount = 3

// Payout rule constants.
const (
	wildPairMultiplier   = 6
	wildTripleMultiplier = 25
	comboMultiplier      = 75
	feverMultiplier      = 50
	jackpotOdds          = 0.25
	scatterPayoutRate    = 0.5
)

// Outcome is the result of evaluating one spin round.
type Outcome struct {
	Reels       []string
	Payout      int64
	Description string
	FreeSpins   int
	JackpotHit  bool
}

// Engine draws reel symbols from the weighted catalog and evaluates spin
// outcomes. All randomness flows through the injected rand source, so a
// seeded engine produces a reproducible sequence of rounds.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine backed by the given random source.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// New creates an engine seeded from the wall clock.
func New() *Engine {
	return NewEngine(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Draw picks one symbol icon from the combined probability space: the first
// 1.5 weight units map to wild, the next 1.5 to scatter, and the remainder is
// split across the catalog proportionally to each symbol's weight. The last
// catalog entry absorbs any floating-point residue.
func (e *Engine) Draw() string {
	roll := e.rng.Float64() * totalWeight

	if roll < wildWeight {
		return Wild
	}
	if roll < wildWeight+scatterWeight {
		return Scatter
	}
	roll -= wildWeight + scatterWeight

	for _, s := range Catalog[:len(Catalog)-1] {
		if roll < s.Weight {
			return s.Icon
		}
		roll -= s.Weight
	}
	return Catalog[len(Catalog)-1].Icon
}

// DrawReels draws a full reel set for one round.
func (e *Engine) DrawReels() []string {
	reels := make([]string, ReelCount)
	for i := range reels {
		reels[i] = e.Draw()
	}
	return reels
}

// Evaluate computes the payout for a drawn reel set. The rules are layered,
// not mutually exclusive: a later rule may raise the payout or rewrite the
// description left by an earlier one. The only randomness is the jackpot
// roll, taken when all three reels show the top-tier symbol.
func (e *Engine) Evaluate(reels []string, bet int64, jackpotAmount int64) Outcome {
	wilds := countIcon(reels, Wild)
	scatters := countIcon(reels, Scatter)

	out := Outcome{
		Reels:       reels,
		Description: "No win... better luck next spin!",
	}

	if allSame(reels) && reels[0] != Wild && reels[0] != Scatter {
		if def, ok := findSymbol(reels[0]); ok {
			out.Payout = bet * def.BaseMultiplier
			out.Description = fmt.Sprintf("Triple %s! x%d", def.Icon, def.BaseMultiplier)
		}
	}

	if wilds >= 2 {
		multiplier := int64(wildPairMultiplier)
		if wilds == ReelCount {
			multiplier = wildTripleMultiplier
		}
		out.Payout = max(out.Payout, bet*multiplier)
		out.Description = fmt.Sprintf("Wild bonus! x%d", multiplier)
	}

	if scatters >= 2 {
		out.FreeSpins = 1
		if scatters == ReelCount {
			out.FreeSpins = 3
		}
		out.Description += fmt.Sprintf(" / Free spins +%d", out.FreeSpins)
		out.Payout += int64(math.Floor(float64(bet) * scatterPayoutRate * float64(scatters)))
	}

	if containsIcon(reels, topTierIcon) && containsIcon(reels, secondTierIcon) && containsIcon(reels, Wild) {
		out.Payout = max(out.Payout, bet*comboMultiplier)
		out.Description = fmt.Sprintf("Ultimate combo! x%d", int64(comboMultiplier))
	}

	if allSame(reels) && reels[0] == topTierIcon {
		if e.rng.Float64() < jackpotOdds {
			out.JackpotHit = true
			out.Payout += jackpotAmount
			out.Description = fmt.Sprintf("MEGA JACKPOT! +%dG", jackpotAmount)
		} else {
			out.Payout = max(out.Payout, bet*feverMultiplier)
			out.Description = fmt.Sprintf("777 fever! x%d", int64(feverMultiplier))
		}
	}

	return out
}

func allSame(reels []string) bool {
	for _, r := range reels[1:] {
		if r != reels[0] {
			return false
		}
	}
	return true
}

func countIcon(reels []string, icon string) int {
	n := 0
	for _, r := range reels {
		if r == icon {
			n++
		}
	}
	return n
}

func containsIcon(reels []string, icon string) bool {
	return countIcon(reels, icon) > 0
}
