package searcher

// Terminal board scores from the maximising player's perspective. Returned
// scores are the sentinels adjusted by search depth: wins score
// MaxWin-depth so shallower wins rank higher, losses score MaxLoss+depth so
// deeper losses rank higher (delay the inevitable). Draws are
// depth-independent. MaxWin comfortably dominates any depth adjustment on
// boards the exhaustive search can actually exhaust.
const (
	MaxWin  = 1000
	MaxLoss = -MaxWin
	Draw    = 0
)
