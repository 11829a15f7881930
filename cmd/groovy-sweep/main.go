package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"groovy-ca/internal/core"
	"groovy-ca/pkg/ca"
)

type ruleResult struct {
	rule           int
	meanDerivative float64
	meanGroovy     float64
	meanGroovy2    float64
}

func main() {
	width := flag.Int("width", 256, "ring width for every run")
	steps := flag.Int("steps", 200, "steps to simulate per rule")
	seed := flag.Int64("seed", 1337, "seed for the shared random initial state")
	fill := flag.Float64("fill", 0.5, "live fraction of the initial state")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 20, "number of rules to report (0 = all)")
	behavior := flag.String("behavior", "", "sweep aware lifts with this behavior instead of standard rules (ignore|stabilize|invert|excite)")
	flag.Parse()

	initial := make([]uint8, *width)
	core.NewRNG(*seed).FillBinaryDensity(initial, *fill)

	var lift bool
	var memory ca.MemoryBehavior
	if *behavior != "" {
		parsed, err := ca.ParseMemoryBehavior(*behavior)
		if err != nil {
			log.Fatal(err)
		}
		lift = true
		memory = parsed
	}

	jobs := make(chan int)
	results := make([]ruleResult, 256)
	var wg sync.WaitGroup

	if *workers < 1 {
		*workers = 1
	}
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				res, err := evaluate(n, initial, *steps, lift, memory)
				if err != nil {
					log.Fatalf("rule %d: %v", n, err)
				}
				results[n] = res
			}
		}()
	}
	for n := 0; n < 256; n++ {
		jobs <- n
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		if results[i].meanGroovy != results[j].meanGroovy {
			return results[i].meanGroovy > results[j].meanGroovy
		}
		return results[i].rule < results[j].rule
	})

	limit := len(results)
	if *top > 0 && *top < limit {
		limit = *top
	}

	family := "standard"
	if lift {
		family = "aware/" + memory.String()
	}
	fmt.Printf("Sweep of 256 %s rules, width %d, %d steps, seed %d\n", family, *width, *steps, *seed)
	fmt.Printf("%-6s %10s %10s %10s\n", "rule", "mean D", "mean G", "mean G2")
	for _, r := range results[:limit] {
		if lift {
			fmt.Printf("%-6d %10.4f %10.4f %10s\n", r.rule, r.meanDerivative, r.meanGroovy, "-")
			continue
		}
		fmt.Printf("%-6d %10.4f %10.4f %10.4f\n", r.rule, r.meanDerivative, r.meanGroovy, r.meanGroovy2)
	}
}

func evaluate(n int, initial []uint8, steps int, lift bool, memory ca.MemoryBehavior) (ruleResult, error) {
	rule, err := ca.NewStandardRule(n)
	if err != nil {
		return ruleResult{}, err
	}

	var run *ca.Run
	if lift {
		run, err = ca.RunAware(ca.LiftToAware(rule, memory), initial, steps)
	} else {
		run, err = ca.RunStandard(rule, initial, steps)
	}
	if err != nil {
		return ruleResult{}, err
	}

	return ruleResult{
		rule:           n,
		meanDerivative: run.MeanDerivativeDensity,
		meanGroovy:     run.MeanGroovyDensity,
		meanGroovy2:    run.MeanGroovy2Density,
	}, nil
}
