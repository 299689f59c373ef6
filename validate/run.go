// SPDX-License-Identifier: MIT

package validate

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/holiman/uint256"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orthogf2/binary"
	"github.com/katalvlaran/orthogf2/matrix"
	"github.com/katalvlaran/orthogf2/orthogonal"
)

var log = logging.Logger("validate")

// buildElement produces the element checked at each index.
var buildElement = orthogonal.IndexedElement

// Report summarizes a successful sweep.
type Report struct {
	N          int
	Lo, Hi     *uint256.Int // swept range [Lo, Hi)
	Checked    uint64       // elements checked
	Distinct   uint64       // distinct matrices seen; 0 when uniqueness is off
	MeanWeight float64      // mean Hamming weight of M·probe
}

// Run checks every element with index in the configured range.
//
// Implementation:
//   - Stage 1: resolve the range against Order(n) and the probe against n.
//   - Stage 2: split the range into contiguous chunks, run them on an
//     errgroup limited to the worker count. Each element is built, checked
//     for MᵗM = I, inserted into the uniqueness set and multiplied by the
//     probe.
//   - Stage 3: the first failure cancels the remaining chunks.
//
// Errors: orthogonal.ErrInvalidDimension, ErrInvalidRange, ErrTooLarge,
// ErrInvalidProbe, ErrNotOrthogonal, ErrDuplicate, ctx.Err().
func Run(ctx context.Context, n int, opts ...Option) (Report, error) {
	cfg := newConfig(opts...)

	ord, err := orthogonal.Order(n)
	if err != nil {
		return Report{}, err
	}
	lo, hi := cfg.lo, cfg.hi
	if lo == nil {
		lo = new(uint256.Int)
	}
	if hi == nil {
		hi = ord
	}
	if !lo.Lt(hi) || hi.Gt(ord) {
		return Report{}, fmt.Errorf("[%s, %s) with order %s: %w", lo.Dec(), hi.Dec(), ord.Dec(), ErrInvalidRange)
	}
	span := new(uint256.Int).Sub(hi, lo)
	if !span.IsUint64() || (cfg.unique && span.Uint64() > maxUniqueSpan) {
		return Report{}, fmt.Errorf("span %s: %w", span.Dec(), ErrTooLarge)
	}
	probe := cfg.probe
	if probe == nil {
		probe = defaultProbe(n)
	}
	if len(probe) != n {
		return Report{}, fmt.Errorf("len %d, n %d: %w", len(probe), n, ErrInvalidProbe)
	}
	m, err := newMetrics(cfg.reg)
	if err != nil {
		return Report{}, err
	}

	s := &sweeper{
		n:       n,
		lo:      lo,
		total:   span.Uint64(),
		probe:   probe,
		every:   cfg.progressEvery,
		metrics: m,
	}
	if cfg.unique {
		s.seen = newKeySet(s.total)
	}

	log.Infof("validating n=%d over [%s, %s) with %d workers", n, lo.Dec(), hi.Dec(), cfg.workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	chunk := s.total / uint64(cfg.workers*chunksPerWorker)
	if chunk == 0 {
		chunk = 1
	}
	for from := uint64(0); from < s.total; from += chunk {
		if gctx.Err() != nil {
			break
		}
		to := min(from+chunk, s.total)
		g.Go(func() error { return s.sweep(gctx, from, to) })
	}
	if err = g.Wait(); err != nil {
		return Report{}, err
	}
	// a cancellation that raced the last chunk still aborts the report
	if err = ctx.Err(); err != nil {
		return Report{}, err
	}
	s.metrics.setProgress(s.total, s.total)

	rep := Report{
		N:          n,
		Lo:         lo.Clone(),
		Hi:         hi.Clone(),
		Checked:    s.checked.Load(),
		MeanWeight: float64(s.weight.Load()) / float64(s.total),
	}
	if s.seen != nil {
		rep.Distinct = s.seen.len()
	}
	log.Infof("n=%d: %d elements orthogonal, %d distinct, mean weight %.4f", n, rep.Checked, rep.Distinct, rep.MeanWeight)

	return rep, nil
}

// sweeper holds the state shared by all chunks of one Run.
type sweeper struct {
	n       int
	lo      *uint256.Int
	total   uint64
	probe   matrix.Vector
	every   uint64
	seen    *keySet // nil when uniqueness is off
	metrics *metrics

	checked atomic.Uint64
	weight  atomic.Uint64
}

// sweep checks offsets [from, to) relative to lo.
func (s *sweeper) sweep(ctx context.Context, from, to uint64) error {
	var idx uint256.Int
	for off := from; off < to; off++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		idx.AddUint64(s.lo, off)
		m, err := buildElement(s.n, &idx)
		if err != nil {
			return err
		}
		if !orthogonal.IsOrthogonal(m) {
			s.metrics.fail(kindNotOrthogonal)
			return fmt.Errorf("index %s:\n%s%w", idx.Dec(), m, ErrNotOrthogonal)
		}
		if s.seen != nil {
			if prev, dup := s.seen.insert(m.Key(), off); dup {
				s.metrics.fail(kindDuplicate)
				first := new(uint256.Int).AddUint64(s.lo, prev)
				return fmt.Errorf("indices %s and %s:\n%s%w", first.Dec(), idx.Dec(), m, ErrDuplicate)
			}
		}
		y, err := matrix.MatVec(m, s.probe)
		if err != nil {
			return err
		}
		s.weight.Add(uint64(binary.Weight(y)))

		s.metrics.incChecked()
		if done := s.checked.Add(1); done%s.every == 0 {
			log.Infof("n=%d: checked %d/%d", s.n, done, s.total)
			s.metrics.setProgress(done, s.total)
		}
	}
	s.metrics.setProgress(s.checked.Load(), s.total)

	return nil
}

// keySet is the mutex-guarded uniqueness set: matrix key → first offset.
type keySet struct {
	mu sync.Mutex
	m  map[string]uint64
}

// maxPrealloc caps the initial map size hint.
const maxPrealloc = 1 << 20

func newKeySet(hint uint64) *keySet {
	return &keySet{m: make(map[string]uint64, min(hint, maxPrealloc))}
}

// insert records key at off; on a repeat it returns the earlier offset.
func (k *keySet) insert(key string, off uint64) (uint64, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if prev, ok := k.m[key]; ok {
		return prev, true
	}
	k.m[key] = off

	return 0, false
}

func (k *keySet) len() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()

	return uint64(len(k.m))
}
