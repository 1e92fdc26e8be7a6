// qgjoin indexes a "left" stream by folded 5-grams, then matches each line
// of a "right" stream against it, emitting (left_line, right_line, score)
// triples for lines that share a long consecutive run of matching q-grams.
//
// Usage: qgjoin LEFT [RIGHT]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/hroptatyr/qgjoin/cliio"
	"github.com/hroptatyr/qgjoin/fold"
	"github.com/hroptatyr/qgjoin/join"
	"github.com/hroptatyr/qgjoin/posting"
)

var hashedIndexFlag = flag.Bool("hashed-index", false, "use a hash-map posting index instead of the flat 2^25-slot array")

func main() {
	shutdown := grail.Init()
	defer shutdown()

	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("qgjoin: left input file not given")
	}
	leftPath := flag.Arg(0)
	rightPath := "-"
	if flag.NArg() >= 2 {
		rightPath = flag.Arg(1)
	}

	ctx := vcontext.Background()

	left, err := cliio.Open(ctx, leftPath)
	if err != nil {
		log.Fatalf("qgjoin: cannot open left input file: %v", err)
	}
	leftLines, err := readLines(left)
	left.Close()
	if err != nil {
		log.Fatalf("qgjoin: error reading left input file: %v", err)
	}

	var backend posting.Backend
	if *hashedIndexFlag {
		backend = posting.NewHashed()
	} else {
		backend = posting.NewArray(fold.Width(join.DefaultIleave))
	}
	idx := join.BuildIndex(leftLines, backend, join.DefaultIleave)
	ws := join.NewWorkspace(idx)

	right, err := cliio.Open(ctx, rightPath)
	if err != nil {
		log.Fatalf("qgjoin: cannot open right input file: %v", err)
	}
	defer right.Close()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	sc := bufio.NewScanner(right)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		for _, m := range ws.Match(line) {
			fmt.Fprintf(w, "%s\t%s\t%d\n", idx.Pool.Lookup(m.Factor), line, m.Score)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("qgjoin: error reading right input file: %v", err)
	}
}

func readLines(r io.Reader) ([][]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var lines [][]byte
	for sc.Scan() {
		line := append([]byte(nil), sc.Bytes()...)
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
