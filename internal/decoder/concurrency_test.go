package decoder

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestDecodeUnknownConcurrent exercises SPEC_FULL's concurrency property
// (§5): the unknown dispatcher has no shared mutable state across calls,
// so many goroutines may decode in parallel. Run under `go test -race`.
func TestDecodeUnknownConcurrent(t *testing.T) {
	lines := []string{
		`<34>1 2003-10-11T22:14:15.003Z mymachine.example.com su - ID47 - BOM'su root' failed`,
		`<13>Oct 11 22:14:15 mymachine su: 'su root' failed`,
		`CEF:1|Security|threatmanager|1.0|100|worm|10|src=10.0.0.1 dst=2.1.2.2`,
		`plain unstructured line with no recognisable framing`,
	}

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 200; i++ {
		line := lines[i%len(lines)]
		g.Go(func() error {
			env := DecodeUnknown(line)
			if env == nil {
				return fmt.Errorf("nil envelope for %q", line)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
