package slot

// Symbol describes one reel symbol: its icon, its relative draw weight and
// the multiplier paid on a triple match.
type Symbol struct {
	Icon           string
	Weight         float64
	BaseMultiplier int64
}

// Special symbols. Wild counts toward the wild bonus but never toward a
// plain triple match; Scatter grants free spins when drawn twice or more.
const (
	Wild    = "🃏"
	Scatter = "🎰"
)

const (
	wildWeight    = 1.5
	scatterWeight = 1.5
)

// Catalog is the fixed set of ordinary symbols, ordered from most to least
// common. Read-only after startup.
var Catalog = []Symbol{
	{Icon: "🍒", Weight: 30, BaseMultiplier: 2},
	{Icon: "🍋", Weight: 25, BaseMultiplier: 3},
	{Icon: "🔔", Weight: 20, BaseMultiplier: 5},
	{Icon: "⭐", Weight: 14, BaseMultiplier: 8},
	{Icon: "💎", Weight: 8, BaseMultiplier: 15},
	{Icon: "7️⃣", Weight: 3, BaseMultiplier: 35},
}

// Top-tier and second-tier icons, used by the ultimate combo and jackpot
// rules. They are the last two catalog entries.
var (
	topTierIcon    = Catalog[len(Catalog)-1].Icon
	secondTierIcon = Catalog[len(Catalog)-2].Icon
)

// totalWeight is the combined probability mass: every ordinary symbol plus
// the two special symbols.
var totalWeight = func() float64 {
	total := wildWeight + scatterWeight
	for _, s := range Catalog {
		total += s.Weight
	}
	return total
}()

func findSymbol(icon string) (Symbol, bool) {
	for _, s := range Catalog {
		if s.Icon == icon {
			return s, true
		}
	}
	return Symbol{}, false
}
