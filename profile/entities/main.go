// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/60-de-QI/vulqian"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type pair struct{ vulqian.System }

func main() {
	count := 50
	iters := 10000
	entities := vulqian.MaxEntities
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		c := vulqian.NewCoordinator(vulqian.WithCapacity(numEntities))
		id1 := vulqian.RegisterComponent[comp1](c)
		id2 := vulqian.RegisterComponent[comp2](c)
		vulqian.RegisterSystem[pair](c)
		vulqian.SetSystemSignature[pair](c, vulqian.NewSignature(id1, id2))
		b1 := vulqian.NewBuilder[comp1](c)
		b2 := vulqian.NewBuilder[comp2](c)

		ents := make([]vulqian.Entity, 0, numEntities)
		for range iters {
			for range numEntities {
				e := b1.NewEntity(comp1{})
				b2.Set(e, comp2{V: 1, W: 1})
				ents = append(ents, e)
			}
			for _, e := range ents {
				c.DestroyEntity(e)
			}
			ents = ents[:0]
		}
	}
}
