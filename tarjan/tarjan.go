// Package tarjan computes the strongly connected components (SCCs) of a
// directed graph in a single depth-first pass.
//
// What:
//
//   - SCC(g, opts...): partition every node of g into maximal groups of
//     mutually reachable nodes, emitted in reverse topological order of
//     the condensation graph.
//   - Per-node discovery indices and low-link values identify component
//     roots (lowlink == index); a shared working stack materializes each
//     component the moment its root finishes.
//   - The traversal is iterative: an explicit stack of frames, one per
//     open DFS branch, replaces native recursion, so pathological graphs
//     (a million-node chain) cannot exhaust the goroutine stack.
//
// Why:
//   - Detect cycles and which nodes participate in them
//   - Condense dependency graphs before scheduling or ordering passes
//   - Drive liveness / dead-code style analyses bottom-up over components
//
// Complexity:
//
//   - Time:   O(V + E)  (every node discovered once, every edge examined once)
//   - Memory: O(V)      (per-node state, working stack, frame stack)
//
// Determinism: for a fixed graph and fixed successor-list order the output
// is identical across runs. Each run owns its state exclusively; a Graph
// may be analyzed repeatedly or from multiple goroutines concurrently.
//
// Errors:
//
//   - ErrGraphNil  if g is nil. A validated graph cannot otherwise fail:
//     the run is a pure function of the adjacency lists and always
//     terminates with a complete partition.
package tarjan

import (
	"github.com/katalvlaran/scc/digraph"
)

// frame is one suspended DFS activation: the node being explored and a
// cursor into its successor list. Frames live in a slice indexed by
// recursion depth, replacing the native call stack.
type frame struct {
	node int // node whose successors are being examined
	next int // index of the next successor to examine
}

// sccRun owns all mutable traversal state for a single SCC invocation.
// It is created fresh inside SCC, never escapes, and is discarded once
// the result has been assembled.
type sccRun struct {
	adj [][]int // read-only adjacency view, shared with the Graph

	index   []int  // discovery order, assigned once per node
	lowlink []int  // smallest index reachable via tree edges + one stack edge
	visited []bool // node has been discovered
	onStack []bool // node is live: discovered, component not yet closed

	stack  []int   // working stack of live nodes, oldest ancestor first
	frames []frame // explicit DFS call stack

	counter int   // next discovery index to assign
	comps   [][]int
	compOf  []int
}

// SCC computes the strongly connected components of g.
// Returns ErrGraphNil if g is nil; a non-nil graph always yields a full
// partition (see Result for ordering guarantees).
// Complexity: O(V+E) time, O(V) auxiliary memory.
func SCC(g *digraph.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	ropts := DefaultOptions()
	for _, fn := range opts {
		fn(&ropts)
	}

	// 3. Initialize per-run state
	n := g.NodeCount()
	run := &sccRun{
		adj:     g.InternalAdjacency(),
		index:   make([]int, n),
		lowlink: make([]int, n),
		visited: make([]bool, n),
		onStack: make([]bool, n),
		stack:   make([]int, 0, n),
		comps:   make([][]int, 0, ropts.ComponentHint),
		compOf:  make([]int, n),
	}

	// 4. Drive DFS from every undiscovered node in increasing index order;
	//    this covers disconnected graphs completely.
	for v := 0; v < n; v++ {
		if !run.visited[v] {
			run.strongConnect(v)
		}
	}

	return &Result{Components: run.comps, ComponentOf: run.compOf}, nil
}

// strongConnect explores the DFS tree rooted at start, updating low-links
// and emitting a component whenever a frame unwinds with lowlink == index.
// It simulates recursion with r.frames: pushing a frame suspends the
// parent until the child's subtree is fully resolved, strictly nested.
func (r *sccRun) strongConnect(start int) {
	// 1. Open the root frame
	r.discover(start)
	r.frames = append(r.frames, frame{node: start})

	for len(r.frames) > 0 {
		f := &r.frames[len(r.frames)-1]
		v := f.node
		succs := r.adj[v]

		// 2. Examine successors from the saved cursor onward
		descended := false
		for f.next < len(succs) {
			u := succs[f.next]
			f.next++

			if !r.visited[u] {
				// 2a. Tree edge: suspend v, descend into u.
				//     The low-link merge happens when u's frame unwinds.
				r.discover(u)
				r.frames = append(r.frames, frame{node: u})
				descended = true

				break
			}
			if r.onStack[u] {
				// 2b. Back or cross edge into the live stack: u belongs to
				//     an unresolved component reachable from v.
				if r.index[u] < r.lowlink[v] {
					r.lowlink[v] = r.index[u]
				}
			}
			// 2c. Edge to a finalized node: its component is already
			//     closed and cannot affect v's low-link. Ignore.
		}
		if descended {
			continue
		}

		// 3. All successors examined: unwind v's frame and propagate its
		//    low-link to the suspended parent (the tree-edge merge).
		r.frames = r.frames[:len(r.frames)-1]
		if len(r.frames) > 0 {
			parent := r.frames[len(r.frames)-1].node
			if r.lowlink[v] < r.lowlink[parent] {
				r.lowlink[parent] = r.lowlink[v]
			}
		}

		// 4. Root test: v closes a component iff no node above it on the
		//    working stack reaches below v's discovery index.
		if r.lowlink[v] == r.index[v] {
			r.emit(v)
		}
	}
}

// discover assigns v its discovery index, initializes its low-link, and
// pushes it onto the working stack.
func (r *sccRun) discover(v int) {
	r.index[v] = r.counter
	r.lowlink[v] = r.counter
	r.counter++
	r.visited[v] = true
	r.onStack[v] = true
	r.stack = append(r.stack, v)
}

// emit pops the working stack down to and including root, recording the
// popped nodes as one finished component. The root is popped last, so it
// is the final element of the component slice.
func (r *sccRun) emit(root int) {
	comp := make([]int, 0, 1)
	pos := len(r.comps)
	for {
		w := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		r.onStack[w] = false
		r.compOf[w] = pos
		comp = append(comp, w)
		if w == root {
			break
		}
	}
	r.comps = append(r.comps, comp)
}
