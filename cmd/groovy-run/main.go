package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"groovy-ca/internal/core"
	"groovy-ca/internal/sims/life"
	"groovy-ca/pkg/ca"
)

func main() {
	family := flag.String("family", "standard", "rule family: standard, aware or life")
	rule := flag.Int("rule", 110, "Wolfram rule number (standard, or aware base rule)")
	behavior := flag.String("behavior", "stabilize", "memory behavior for aware lifts (ignore|stabilize|invert|excite)")
	raw := flag.Int("raw", -1, "raw 16-bit aware rule number, overrides -rule/-behavior")
	width := flag.Int("width", 120, "ring width (1D) or grid width (life)")
	height := flag.Int("height", 80, "grid height (life only)")
	steps := flag.Int("steps", 100, "number of steps to simulate")
	seed := flag.Int64("seed", 1337, "seed for random initial states")
	random := flag.Bool("random", false, "random initial state instead of a single centered cell (1D)")
	fill := flag.Float64("fill", 0.5, "live fraction for random initial states")
	birth := flag.String("birth", "3", "birth neighbor counts (life only)")
	survive := flag.String("survive", "23", "survival neighbor counts (life only)")
	trace := flag.Bool("trace", false, "print per-step density trace")
	watch := flag.Bool("watch", false, "replay the state history as ASCII frames")
	tps := flag.Int("tps", 20, "frames per second for -watch")
	flag.Parse()

	switch *family {
	case "standard", "aware":
		run1D(*family, *rule, *behavior, *raw, *width, *steps, *seed, *random, *fill, *trace, *watch, *tps)
	case "life":
		runLife(*birth, *survive, *width, *height, *steps, *seed, *fill, *trace, *watch, *tps)
	default:
		log.Fatalf("unknown family %q, want standard, aware or life", *family)
	}
}

func run1D(family string, ruleNum int, behavior string, raw, width, steps int, seed int64, random bool, fill float64, trace, watch bool, tps int) {
	initial, err := ca.SingleSeed(width)
	if err != nil {
		log.Fatal(err)
	}
	if random {
		core.NewRNG(seed).FillBinaryDensity(initial, fill)
	}

	var run *ca.Run
	label := fmt.Sprintf("standard rule %d", ruleNum)
	if family == "aware" {
		var aware ca.AwareRule
		if raw >= 0 {
			aware, err = ca.NewAwareRule(raw)
			label = fmt.Sprintf("aware rule %d", raw)
		} else {
			var base ca.StandardRule
			base, err = ca.NewStandardRule(ruleNum)
			if err == nil {
				var mem ca.MemoryBehavior
				mem, err = ca.ParseMemoryBehavior(behavior)
				if err == nil {
					aware = ca.LiftToAware(base, mem)
					label = fmt.Sprintf("aware lift of rule %d (%s) = %d", ruleNum, mem, aware.Number())
				}
			}
		}
		if err != nil {
			log.Fatal(err)
		}
		run, err = ca.RunAware(aware, initial, steps)
	} else {
		var std ca.StandardRule
		std, err = ca.NewStandardRule(ruleNum)
		if err != nil {
			log.Fatal(err)
		}
		run, err = ca.RunStandard(std, initial, steps)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s, width %d, %d steps\n", label, width, steps)
	if trace {
		for t := range run.Derivatives {
			line := fmt.Sprintf("t=%-4d D=%.4f G=%.4f", t, ca.Density(run.Derivatives[t]), ca.Density(run.Groovies[t]))
			if run.Groovies2 != nil {
				line += fmt.Sprintf(" G2=%.4f", ca.Density(run.Groovies2[t]))
			}
			fmt.Println(line)
		}
	}
	fmt.Printf("mean densities: D=%.4f G=%.4f", run.MeanDerivativeDensity, run.MeanGroovyDensity)
	if run.Groovies2 != nil {
		fmt.Printf(" G2=%.4f", run.MeanGroovy2Density)
	}
	fmt.Println()

	if watch {
		replayRows(run.States, tps)
	}
}

func runLife(birth, survive string, width, height, steps int, seed int64, fill float64, trace, watch bool, tps int) {
	rule, err := ca.NewLifeRule(life.ParseDigits(birth), life.ParseDigits(survive))
	if err != nil {
		log.Fatal(err)
	}
	grid, err := ca.NewGrid(width, height)
	if err != nil {
		log.Fatal(err)
	}
	core.NewRNG(seed).FillBinaryDensity(grid.Cells(), fill)

	run, err := ca.RunLife(rule, grid, steps)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s, %dx%d torus, %d steps\n", rule, width, height, steps)
	if trace {
		for t := range run.Derivatives {
			fmt.Printf("t=%-4d D=%.4f G=%.4f\n", t, run.Derivatives[t].Density(), run.Groovies[t].Density())
		}
	}
	fmt.Printf("mean densities: D=%.4f G=%.4f\n", run.MeanDerivativeDensity, run.MeanGroovyDensity)

	if watch {
		replayGrids(run.Grids, tps)
	}
}

func replayRows(states [][]uint8, tps int) {
	fs := core.NewFixedStep(tps)
	fs.Reset()
	for _, s := range states {
		waitForTick(fs)
		fmt.Println(renderRow(s))
	}
}

func replayGrids(grids []ca.Grid, tps int) {
	fs := core.NewFixedStep(tps)
	fs.Reset()
	for t, g := range grids {
		waitForTick(fs)
		fmt.Printf("--- t=%d ---\n", t)
		cells := g.Cells()
		for y := 0; y < g.H; y++ {
			fmt.Println(renderRow(cells[y*g.W : (y+1)*g.W]))
		}
	}
}

func waitForTick(fs *core.FixedStep) {
	for !fs.ShouldStep() {
		time.Sleep(time.Millisecond)
	}
}

func renderRow(cells []uint8) string {
	var sb strings.Builder
	sb.Grow(len(cells))
	for _, c := range cells {
		if c != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
