package bucket

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dwgero/hashers"
)

// pointsPerNode virtual points placed on the ring per unit of weight.
const pointsPerNode = 160

type tick struct {
	hash uint32
	node string
}

// Ring is a weighted consistent-hash ring. Writers rebuild the tick array
// under a mutex and publish it atomically; Get runs lock-free against the
// last published snapshot.
type Ring struct {
	mu    sync.Mutex
	nodes map[string]int
	seed  uint64
	ticks atomic.Pointer[[]tick]
}

// NewRing creates an empty ring whose placement is keyed by seed.
func NewRing(seed uint64) *Ring {
	r := &Ring{
		nodes: make(map[string]int),
		seed:  seed,
	}
	r.ticks.Store(&[]tick{})
	return r
}

// Add inserts node with the given weight, or updates its weight if already
// present. Weight must be positive; higher weights attract proportionally
// more keys.
func (r *Ring) Add(node string, weight int) {
	if weight <= 0 {
		weight = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[node] = weight
	r.rebuild()
}

// Remove deletes node from the ring. Removing an absent node is a no-op.
func (r *Ring) Remove(node string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.nodes[node]; !ok {
		return
	}
	delete(r.nodes, node)
	r.rebuild()
}

// Nodes returns the current node names in unspecified order.
func (r *Ring) Nodes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.nodes))
	for n := range r.nodes {
		out = append(out, n)
	}
	return out
}

// Get returns the node responsible for key. The second return is false when
// the ring is empty.
func (r *Ring) Get(key []byte) (string, bool) {
	ticks := *r.ticks.Load()
	if len(ticks) == 0 {
		return "", false
	}
	h := hashers.Sum(key, r.seed)
	// First tick at or past h, wrapping to the start of the ring.
	idx := sort.Search(len(ticks), func(i int) bool { return ticks[i].hash >= h })
	if idx == len(ticks) {
		idx = 0
	}
	return ticks[idx].node, true
}

// GetString is Get for string keys.
func (r *Ring) GetString(key string) (string, bool) {
	return r.Get([]byte(key))
}

// rebuild recomputes and publishes the tick array. Caller holds r.mu.
func (r *Ring) rebuild() {
	var ticks []tick
	for node, weight := range r.nodes {
		for p := 0; p < weight*pointsPerNode; p++ {
			vnode := fmt.Sprintf("%s-%d", node, p)
			ticks = append(ticks, tick{
				hash: hashers.SumString(vnode, r.seed),
				node: node,
			})
		}
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].hash < ticks[j].hash })
	r.ticks.Store(&ticks)
}
