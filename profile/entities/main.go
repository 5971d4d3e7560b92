// Profiling:
// go build ./profile/entities
// STITCH_LOG_LEVEL=info ./entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"os"

	"github.com/edwinsyarief/stitch"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
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
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities, opts)
	p.Stop()
}

// run churns entities through add/remove transitions so that archetype
// moves and swap-remove compaction dominate the profile.
func run(rounds, iters, numEntities int, opts []stitch.Option) {
	for range rounds {
		w := stitch.NewWorld(append(opts, stitch.WithInitialCapacity(numEntities))...)
		query := stitch.NewFilter2[comp1, comp2](w)
		batch := stitch.NewBuilder[comp1](w)

		for range iters {
			for _, e := range batch.NewEntities(numEntities, comp1{}) {
				if _, err := stitch.AddComponent(w, e, comp2{V: 1, W: 2}); err != nil {
					panic(err)
				}
			}
			query.Reset()
			for query.Next() {
				comp1, comp2 := query.Get()
				comp1.V += comp2.V
				comp1.W += comp2.W
			}
			query.DestroyEntities()
		}
		w.LogArchetypes(zerolog.InfoLevel)
	}
}
