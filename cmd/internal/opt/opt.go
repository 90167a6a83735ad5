package opt

import (
	"flag"
	"strconv"
	"strings"

	"github.com/quorbot/quorbot/ai"
)

type Engine struct {
	Threshold int
	Seed      int64
}

func (o *Engine) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Threshold, "threshold", ai.DefaultThreshold,
		"spend a wall once an opponent's best wall would add more than this many moves")
	flags.Int64Var(&o.Seed, "seed", 0, "seed for random bots")
}

func (o *Engine) BuildConfig() ai.Config {
	return ai.Config{Threshold: o.Threshold}
}

// Builtin returns the in-process bot called name: "engine", "random"
// or "random:SEED".
func (o *Engine) Builtin(name string) (ai.Bot, bool) {
	switch {
	case name == "engine":
		return ai.NewEngine(o.BuildConfig()), true
	case name == "random":
		return ai.NewRandom(o.Seed), true
	case strings.HasPrefix(name, "random:"):
		seed, err := strconv.ParseInt(strings.TrimPrefix(name, "random:"), 10, 64)
		if err != nil {
			return nil, false
		}
		return ai.NewRandom(seed), true
	}
	return nil, false
}
