// cprfx groups adjacent lines of its input by longest common prefix,
// emitting a (prefix, count) record each time the common prefix shrinks.
//
// Usage: cprfx [--verbose] [FILE ...]
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/hroptatyr/qgjoin/cliio"
	"github.com/hroptatyr/qgjoin/prefix"
)

var verboseFlag = flag.Bool("verbose", false, "also report streaks of a single line (lowers the emission threshold to 0)")

func main() {
	shutdown := grail.Init()
	defer shutdown()

	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	thresh := 1
	if *verboseFlag {
		thresh = 0
	}

	ctx := vcontext.Background()
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	c := prefix.NewCollapser(thresh)
	for _, path := range paths {
		if err := runFile(ctx, c, w, path); err != nil {
			log.Fatalf("cprfx: %v", err)
		}
	}
	emit(w, c.Flush())
}

func runFile(ctx context.Context, c *prefix.Collapser, w *bufio.Writer, path string) error {
	r, err := cliio.Open(ctx, path)
	if err != nil {
		return err
	}
	defer r.Close()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		emit(w, c.Feed(sc.Bytes()))
	}
	return sc.Err()
}

func emit(w *bufio.Writer, recs []prefix.Record) {
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%d\n", r.Prefix, r.Count)
	}
}
