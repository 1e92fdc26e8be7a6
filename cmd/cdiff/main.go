// cdiff blanks out each line's common prefix with the previous line,
// across one or more files, so the part that actually changed stands out.
//
// Usage: cdiff [--whitespace] [FILE ...]
package main

import (
	"bufio"
	"context"
	"flag"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/hroptatyr/qgjoin/cliio"
	"github.com/hroptatyr/qgjoin/diff"
)

var whitespaceFlag = flag.Bool("whitespace", false, "snap the blanked boundary back to the last whitespace byte")

func main() {
	shutdown := grail.Init()
	defer shutdown()

	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	ctx := vcontext.Background()
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	d := diff.NewDiffer(*whitespaceFlag)
	for _, path := range paths {
		if err := runFile(ctx, d, w, path); err != nil {
			log.Fatalf("cdiff: %v", err)
		}
	}
}

func runFile(ctx context.Context, d *diff.Differ, w *bufio.Writer, path string) error {
	r, err := cliio.Open(ctx, path)
	if err != nil {
		return err
	}
	defer r.Close()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		w.Write(d.Line(sc.Bytes()))
		w.WriteByte('\n')
	}
	return sc.Err()
}
