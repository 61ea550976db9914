package mainwindow

import "sync"

// pendingSession holds a session requested before the canvas has its real
// size, so the chart is fitted to the laid-out canvas rather than the
// bootstrap surface.
type pendingSession struct {
	mu    sync.Mutex
	path  string
	ready bool
	open  func(path string)
}

// Request opens path now if the canvas is ready, else on Ready.
// A later request replaces an earlier pending one.
func (p *pendingSession) Request(path string) {
	p.mu.Lock()
	if !p.ready {
		p.path = path
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	p.open(path)
}

// Ready marks the canvas as laid out and opens the pending session, once.
func (p *pendingSession) Ready() {
	p.mu.Lock()
	if p.ready {
		p.mu.Unlock()
		return
	}
	p.ready = true
	path := p.path
	p.path = ""
	p.mu.Unlock()

	if path != "" {
		p.open(path)
	}
}
