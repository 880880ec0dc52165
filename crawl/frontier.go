package crawl

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier is an in-memory FIFO crawl worklist with Bloom filter
// deduplication. FIFO order gives the breadth-first traversal the crawler
// depends on. It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue []string
}

// NewFrontier creates a new Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push adds a URL to the back of the worklist.
// Returns false if the URL has already been seen.
// URL fragments are stripped before deduplication - URLs differing only by
// fragment are considered duplicates.
func (f *Frontier) Push(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(rawURL)

	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)

	f.queue = append(f.queue, url)
	return true
}

// Pop returns the earliest-enqueued URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs in the worklist.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
