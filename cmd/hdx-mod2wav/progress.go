package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

const barWidth = 30

// Progress draws a one-line bar of finished files.
type Progress struct {
	out     io.Writer
	total   int
	current int
	failed  int
	mu      sync.Mutex
}

func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done records one finished file; err marks it failed and is printed above
// the bar.
func (p *Progress) Done(name string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	if err != nil {
		p.failed++
		fmt.Fprintf(p.out, "\r[Error] %s: %v\n", name, err)
	}
	p.draw()
}

func (p *Progress) Failed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failed
}

func (p *Progress) draw() {
	percent := 1.0
	if p.total > 0 {
		percent = float64(p.current) / float64(p.total)
	}
	filled := int(float64(barWidth) * percent)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	fmt.Fprintf(p.out, "\r [RENDER] [%s] %d%% (%d/%d modules)", bar, int(percent*100), p.current, p.total)

	if p.current == p.total {
		fmt.Fprintln(p.out)
	}
}
