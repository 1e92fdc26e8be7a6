// qgstat reads lines from stdin (or FILE arguments), indexes them the same
// way qgjoin indexes its left stream, and reports each distinct q-gram
// alongside how many times it was recorded.
//
// Usage: qgstat [FILE ...]
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
	"github.com/hroptatyr/qgjoin/fold"
	"github.com/hroptatyr/qgjoin/posting"
	"github.com/hroptatyr/qgjoin/stat"
)

const ileave = 5

func main() {
	shutdown := grail.Init()
	defer shutdown()

	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	ctx := vcontext.Background()
	var lines [][]byte
	for _, path := range paths {
		more, err := readLines(ctx, path)
		if err != nil {
			log.Fatalf("qgstat: %v", err)
		}
		lines = append(lines, more...)
	}

	backend := posting.NewArray(fold.Width(ileave))
	stat.Build(lines, backend, ileave)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, e := range stat.Dump(backend) {
		fmt.Fprintf(w, "%s\t%d\n", e.QGram, e.Count)
	}
}

func readLines(ctx context.Context, path string) ([][]byte, error) {
	r, err := cliio.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var lines [][]byte
	for sc.Scan() {
		lines = append(lines, append([]byte(nil), sc.Bytes()...))
	}
	return lines, sc.Err()
}
