package image

import (
	"image"
	"log"
	"sync"
)

// Handle identifies one load request. The zero Handle means "no load".
type Handle uint64

// Result is delivered once per Begin call.
type Result struct {
	Handle Handle
	Source string
	Image  image.Image // nil when Err is set
	Err    error
}

// Loader decodes chart images in the background. Begin is fire-and-forget;
// completions arrive on Results in the order decoding finishes, and the
// consumer decides which handle is current.
type Loader struct {
	mu      sync.Mutex
	last    Handle
	results chan Result
	load    func(string) (image.Image, error)
}

// NewLoader creates a loader whose results channel holds up to buffer
// undelivered completions.
func NewLoader(buffer int) *Loader {
	return &Loader{
		results: make(chan Result, buffer),
		load:    Load,
	}
}

// Begin starts decoding src and returns its handle.
func (l *Loader) Begin(src string) Handle {
	l.mu.Lock()
	l.last++
	h := l.last
	l.mu.Unlock()

	go func() {
		img, err := l.load(src)
		if err != nil {
			log.Printf("Chart load: %s: %v", src, err)
		}
		l.results <- Result{Handle: h, Source: src, Image: img, Err: err}
	}()
	return h
}

// Results returns the completion channel.
func (l *Loader) Results() <-chan Result {
	return l.results
}

// Latest returns the most recently issued handle.
func (l *Loader) Latest() Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}
