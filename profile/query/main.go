// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"os"

	"github.com/edwinsyarief/stitch"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

func main() {
	cfg, err := stitch.LoadConfig()
	if err != nil {
		panic(err)
	}
	opts, err := cfg.Options(os.Stderr)
	if err != nil {
		panic(err)
	}

	count := 50
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities, opts)
	p.Stop()
}

func run(rounds, iters, numEntities int, opts []stitch.Option) {
	for range rounds {
		w := stitch.NewWorld(append(opts, stitch.WithInitialCapacity(numEntities))...)
		stitch.NewBuilder3[comp1, comp2, comp3](w).NewEntities(numEntities, comp1{}, comp2{V: 1, W: 1}, comp3{})
		// A second archetype holding the queried types, so iteration crosses
		// an archetype boundary.
		stitch.NewBuilder2[comp1, comp2](w).NewEntities(numEntities/10, comp1{}, comp2{V: 2, W: 2})
		query := stitch.NewFilter2[comp1, comp2](w)

		for range iters {
			query.Reset()
			for query.Next() {
				comp1, comp2 := query.Get()
				comp1.V += comp2.V
				comp1.W += comp2.W
			}
		}
	}
}
