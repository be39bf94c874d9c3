// bench - htmltext benchmark runner
//
// Compares the htmltext fast paths against stdlib baselines:
//   - EscapeString vs html.EscapeString (which also escapes ' and
//     always copies)
//   - Builder accumulation vs incremental Text concatenation
//
// Output: CSV on stdout, summary on stderr
package main

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/nascheme/quixote/htmltext"
)

type caseResult struct {
	Name      string
	Bytes     int
	PkgNs     int64
	StdlibNs  int64
	SpeedupPc float64
}

const rounds = 20000

var corpora = []struct {
	Name string
	Text string
}{
	{"clean_prose", strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)},
	{"sparse_markup", strings.Repeat("fish & chips, printed 20 < 30 times. ", 20)},
	{"dense_markup", strings.Repeat(`<td class="num">&nbsp;</td>`, 40)},
	{"attr_heavy", strings.Repeat(`value="with \"quotes\" everywhere" `, 30)},
}

func main() {
	fmt.Fprintf(os.Stderr, "htmltext benchmark runner\n")
	fmt.Fprintf(os.Stderr, "=========================\n")
	fmt.Fprintf(os.Stderr, "%d corpora, %d rounds each\n\n", len(corpora), rounds)

	var results []caseResult
	for _, c := range corpora {
		pkgNs := timeIt(func() {
			_ = htmltext.EscapeString(c.Text)
		})
		stdNs := timeIt(func() {
			_ = html.EscapeString(c.Text)
		})
		results = append(results, caseResult{
			Name:      "escape/" + c.Name,
			Bytes:     len(c.Text),
			PkgNs:     pkgNs,
			StdlibNs:  stdNs,
			SpeedupPc: pct(stdNs, pkgNs),
		})
	}

	fragments := make([]any, 64)
	for i := range fragments {
		if i%2 == 0 {
			fragments[i] = "plain text with <brackets> & ampersands"
		} else {
			fragments[i] = htmltext.New("<li>trusted</li>")
		}
	}

	builderNs := timeIt(func() {
		b := htmltext.NewBuilder(true)
		for _, f := range fragments {
			b.Append(f)
		}
		if _, err := b.Value(); err != nil {
			panic(err)
		}
	})
	concatNs := timeIt(func() {
		out := htmltext.New("")
		for _, f := range fragments {
			next, err := out.Concat(f)
			if err != nil {
				panic(err)
			}
			out = next
		}
		_ = out.String()
	})
	results = append(results, caseResult{
		Name:      "accumulate/64_fragments",
		Bytes:     64,
		PkgNs:     builderNs,
		StdlibNs:  concatNs,
		SpeedupPc: pct(concatNs, builderNs),
	})

	writeCSV(results)

	fmt.Fprintf(os.Stderr, "\n=== SUMMARY ===\n")
	for _, r := range results {
		fmt.Fprintf(os.Stderr, "%-28s htmltext %8dns  baseline %8dns  (%+.1f%%)\n",
			r.Name, r.PkgNs, r.StdlibNs, r.SpeedupPc)
	}
}

// timeIt returns the average time of fn over the configured rounds, in
// nanoseconds per round.
func timeIt(fn func()) int64 {
	// Warm up allocator and caches.
	for i := 0; i < 100; i++ {
		fn()
	}
	start := time.Now()
	for i := 0; i < rounds; i++ {
		fn()
	}
	return time.Since(start).Nanoseconds() / rounds
}

func pct(baseline, pkg int64) float64 {
	if baseline == 0 {
		return 0
	}
	return float64(baseline-pkg) / float64(baseline) * 100.0
}

func writeCSV(results []caseResult) {
	fmt.Println("name,input_bytes,htmltext_ns,baseline_ns,speedup_pct")
	for _, r := range results {
		fmt.Printf("%s,%d,%d,%d,%.1f\n", r.Name, r.Bytes, r.PkgNs, r.StdlibNs, r.SpeedupPc)
	}
}
