// Package xrand provides a fast, thread-safe source of uniform doubles in
// [0,1) for the evolutionary engine's hot paths (gene generation, mutation,
// roulette-wheel draws run millions of times per generation).
package xrand

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// ringSize is the default number of prefilled doubles. A background
// goroutine keeps it topped up one eighth at a time so consumers never block
// on the generator.
const ringSize = 1 << 16 // 65536, power of two for cheap wraparound

// Source is a ring-buffer-backed generator of uniform doubles in [0,1).
// Reads advance a local index with no locking; a single background
// goroutine refills slots behind the read cursor.
type Source struct {
	buf  []float64
	pos  atomic.Uint64
	stop chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

// NewSource creates a deterministic Source seeded with seed. Two Sources
// created with the same seed draw the same sequence of values, required for
// reproducible fitness histories under a fixed seed flag.
func NewSource(seed int64) *Source {
	return newSource(mrand.New(mrand.NewSource(seed)))
}

// NewSourceFromEntropy creates a Source seeded from the OS entropy pool, for
// contest runs where reproducibility is not required.
func NewSourceFromEntropy() *Source {
	var seedBytes [8]byte
	if _, err := rand.Read(seedBytes[:]); err != nil {
		// crypto/rand failing means the OS entropy source is broken; fall
		// back to a seed from math/rand's global source rather than failing evolutionary
		// search outright.
		return NewSource(int64(mrand.Int63()))
	}
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return NewSource(seed)
}

func newSource(gen *mrand.Rand) *Source {
	s := &Source{
		buf:  make([]float64, ringSize),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	for i := range s.buf {
		s.buf[i] = gen.Float64()
	}

	s.wg.Add(1)
	go s.produce(gen)
	return s
}

// produce continuously refills the ring behind the read cursor, one chunk
// of ringSize/8 slots at a time, so Float64 never has to wait on a lock.
func (s *Source) produce(gen *mrand.Rand) {
	defer s.wg.Done()
	defer close(s.done)

	const refillChunk = ringSize / 8
	var lastRefilled uint64

	for {
		select {
		case <-s.stop:
			return
		default:
		}

		pos := s.pos.Load()
		// Refill the region that is now "behind" the reader by at least
		// one chunk, wrapping with the ring's modulus.
		if pos-lastRefilled >= refillChunk {
			start := lastRefilled % ringSize
			for i := uint64(0); i < refillChunk; i++ {
				idx := (start + i) % ringSize
				s.buf[idx] = gen.Float64()
			}
			lastRefilled += refillChunk
		} else {
			runtime.Gosched()
		}
	}
}

// Float64 returns the next uniform double in [0,1).
func (s *Source) Float64() float64 {
	i := s.pos.Add(1) - 1
	return s.buf[i%ringSize]
}

// Range returns a uniform double in [min,max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// IntRange returns a uniform integer in [min,max) via floor of a uniform
// double; min must be < max.
func (s *Source) IntRange(min, max int) int {
	return min + int(math.Floor(s.Float64()*float64(max-min)))
}

// Stop cleanly terminates the background producer goroutine. Calling it
// again after it has returned is a no-op; further draws from the Source
// continue to work against whatever was last written to the ring.
func (s *Source) Stop() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.stop)
	s.wg.Wait()
}
