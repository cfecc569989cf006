package scenario

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
)

// Criteria describe what a format strategy needs from a context.
type Criteria struct {
	Format curriculum.Format

	// Year is the target curriculum year (1-6).
	Year int

	// Theme is optional. When set and no catalog context matches, the
	// selector falls back to procedural generation, then to the
	// generic context.
	Theme Theme
}

// Scoring weights. Theme match dominates, then real-world connection,
// then freshness, then locale; year distance subtracts.
const (
	weightLocale       = 10
	weightRealWorld    = 20
	weightNotRecent    = 15
	weightThemeMatch   = 25
	weightYearDistance = 4
)

// topCandidates is the number of scored candidates entering the
// weighted draw. A pure greedy pick would repeat the same one or two
// contexts for popular criteria combinations.
const topCandidates = 3

// DefaultRecentCapacity bounds the anti-repetition memory.
const DefaultRecentCapacity = 20

// Selector scores and picks contexts. The recently-used memory is the
// only shared mutable state in the engine, so Select serialises on an
// internal mutex and is safe for concurrent use.
type Selector struct {
	mu      sync.Mutex
	catalog []Context
	recent  *recentMemory
	locale  string
	rng     *rand.Rand
}

// NewSelector builds a Selector over a catalog. A nil catalog uses the
// built-in one.
func NewSelector(catalog []Context, rng *rand.Rand) *Selector {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Selector{
		catalog: catalog,
		recent:  newRecentMemory(DefaultRecentCapacity),
		locale:  "en-GB",
		rng:     rng,
	}
}

// Select picks a context for the criteria. It never fails: when no
// catalog entry matches, it degrades to procedural generation for the
// requested theme and finally to the generic context.
func (s *Selector) Select(c Criteria) Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := s.filter(c)

	if len(candidates) == 0 {
		if gen, ok := proceduralGenerators[c.Theme]; ok {
			ctx := gen(c.Year, s.rng)
			s.recent.add(ctx.ID)
			return ctx
		}
		ctx := GenericContext()
		s.recent.add(ctx.ID)
		return ctx
	}

	ranked := s.score(candidates, c)

	// Never repeat a recently used context while fresh ones qualify;
	// the freshness weight alone cannot guarantee that under a
	// weighted draw.
	fresh := ranked[:0:0]
	for _, r := range ranked {
		if !s.recent.contains(r.ctx.ID) {
			fresh = append(fresh, r)
		}
	}
	if len(fresh) > 0 {
		ranked = fresh
	}

	chosen := s.draw(ranked)
	s.recent.add(chosen.ID)
	return chosen
}

// ResetMemory clears the anti-repetition memory. Intended for tests
// and administrative resets.
func (s *Selector) ResetMemory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = newRecentMemory(s.recent.capacity)
}

// filter keeps contexts that support the format and suit the year,
// then applies the theme filter when one was requested.
func (s *Selector) filter(c Criteria) []Context {
	var out []Context
	for _, ctx := range s.catalog {
		if !ctx.SupportsFormat(c.Format) || !ctx.SuitsYear(c.Year) {
			continue
		}
		out = append(out, ctx)
	}
	if c.Theme == "" {
		return out
	}
	var themed []Context
	for _, ctx := range out {
		if ctx.Theme == c.Theme {
			themed = append(themed, ctx)
		}
	}
	return themed
}

type scored struct {
	ctx   Context
	score int
}

func (s *Selector) score(candidates []Context, c Criteria) []scored {
	out := make([]scored, 0, len(candidates))
	for _, ctx := range candidates {
		score := 0
		if ctx.Locale == s.locale {
			score += weightLocale
		}
		if ctx.RealWorldConnection != "" {
			score += weightRealWorld
		}
		if !s.recent.contains(ctx.ID) {
			score += weightNotRecent
		}
		if c.Theme != "" && ctx.Theme == c.Theme {
			score += weightThemeMatch
		}
		score -= weightYearDistance * ctx.yearDistance(c.Year)
		out = append(out, scored{ctx: ctx, score: score})
	}
	// Stable sort keeps catalog order as the tie-break.
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}

// draw picks among the top scored candidates with probability
// proportional to score, so the best matches dominate without becoming
// the only possible picks.
func (s *Selector) draw(ranked []scored) Context {
	if len(ranked) > topCandidates {
		ranked = ranked[:topCandidates]
	}
	total := 0
	for _, r := range ranked {
		w := r.score
		if w < 1 {
			w = 1
		}
		total += w
	}
	n := s.rng.Intn(total)
	for _, r := range ranked {
		w := r.score
		if w < 1 {
			w = 1
		}
		if n < w {
			return r.ctx
		}
		n -= w
	}
	return ranked[len(ranked)-1].ctx
}

// recentMemory is a bounded FIFO of recently selected context ids.
type recentMemory struct {
	capacity int
	ids      []string
	index    map[string]int
}

func newRecentMemory(capacity int) *recentMemory {
	return &recentMemory{
		capacity: capacity,
		index:    make(map[string]int, capacity),
	}
}

func (m *recentMemory) contains(id string) bool {
	return m.index[id] > 0
}

func (m *recentMemory) add(id string) {
	m.ids = append(m.ids, id)
	m.index[id]++
	if len(m.ids) > m.capacity {
		evicted := m.ids[0]
		m.ids = m.ids[1:]
		m.index[evicted]--
		if m.index[evicted] <= 0 {
			delete(m.index, evicted)
		}
	}
}
