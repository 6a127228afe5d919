package spanner

import (
	"runtime"
	"sync"
)

// ParallelSplit is an optional parallel collaborator for Tree.Splitter: it
// grows the tree the same way SequentialSplit does, but recurses into a
// node's right child on a new goroutine whenever one of maxWorkers worker
// slots is free (and on the calling goroutine otherwise), regardless of the
// subtree's size. Node ids come from a single mutex-guarded counter and the
// per-node round-robin cursor (Box.nextPoint) is an atomic.Uint64, so
// splitting and the later spanner-edge selection stay safe under this
// collaborator.
//
// ParallelSplit produces a tree identical to SequentialSplit's modulo node
// id assignment order.
func ParallelSplit(maxWorkers int) func(*Tree) {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	return func(t *Tree) {
		p := &parallelSplitter{tree: t, sem: make(chan struct{}, maxWorkers)}
		p.wg.Add(1)
		p.run(t.Root)
		p.wg.Wait()
	}
}

type parallelSplitter struct {
	tree *Tree
	mu   sync.Mutex
	sem  chan struct{}
	wg   sync.WaitGroup
}

func (p *parallelSplitter) nextID() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tree.nextID()
}

func (p *parallelSplitter) run(b *Box) {
	defer p.wg.Done()
	if !splitBox(p.tree.Set, b, p.nextID) {
		return
	}

	select {
	case p.sem <- struct{}{}:
		p.wg.Add(1)
		go func() {
			defer func() { <-p.sem }()
			p.run(b.right)
		}()
		p.wg.Add(1)
		p.run(b.left)
	default:
		p.wg.Add(1)
		p.run(b.left)
		p.wg.Add(1)
		p.run(b.right)
	}
}
