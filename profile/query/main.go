// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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
	iters := 100000
	entities := vulqian.MaxEntities
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		c := vulqian.NewCoordinator(vulqian.WithCapacity(numEntities))
		id1 := vulqian.RegisterComponent[comp1](c)
		id2 := vulqian.RegisterComponent[comp2](c)
		sys := vulqian.RegisterSystem[pair](c)
		vulqian.SetSystemSignature[pair](c, vulqian.NewSignature(id1, id2))
		for range numEntities {
			e := c.CreateEntity()
			vulqian.AddComponent(c, e, comp1{})
			vulqian.AddComponent(c, e, comp2{V: 1, W: 1})
		}

		query := vulqian.NewFilter2[comp1, comp2](c, &sys.System)
		for range iters {
			query.Reset()
			for query.Next() {
				c1, c2 := query.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
