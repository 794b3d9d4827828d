package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/seipan/treebench/bstree"
)

// Write prints one block per engine: the run parameters, structural
// figures where the engine has them, and mean/sigma for each phase.
func (rep *Report) Write(w io.Writer) error {
	cfg := rep.Config
	fmt.Fprintf(w, "KEYS: %s  TRIES TOT: %d  SEED: %d  DELETE KEY: %d\n",
		humanize.Comma(int64(cfg.Keys)), cfg.Iterations, cfg.Seed, cfg.DeleteKey)

	for _, res := range rep.Results {
		fmt.Fprintf(w, "\n%s:\n", res.Engine)
		if res.MaxDepth >= 0 {
			fmt.Fprintf(w, "MAX DEPTH: %d  MEAN INSERT DEPTH: %.2f\n", res.MaxDepth, res.MeanInsertDepth)
		}
		fmt.Fprintf(w, "HEAP: ~%s  DELETED: %t\n", humanize.Bytes(res.HeapBytes), res.Deleted)

		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "PHASE\tTIME MU\tTIME SIGMA\tMIN\tMAX")
		for _, p := range Phases {
			t := res.Timings[p]
			fmt.Fprintf(tw, "%s\t%v\t%v\t%v\t%v\n", p, t.Mean(), t.StdDev(), t.Min(), t.Max())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// DumpTree loads the dataset into a fresh bstree and prints its pre-order
// records, the depth of every leaf and the resulting height.
func (r *Runner) DumpTree(w io.Writer) error {
	tree := bstree.New[int, int](bstree.WithLogger(r.logger), bstree.WithValidation(r.cfg.Validate))
	defer tree.Close()
	for _, k := range r.dataset {
		if _, _, err := tree.Insert(k, k); err != nil {
			return err
		}
	}

	it := tree.Traverse()
	for rec, ok := it.Next(); ok; rec, ok = it.Next() {
		fmt.Fprintln(w, rec)
	}
	tree.LeafDepths(func(depth int) {
		fmt.Fprintln(w, depth)
	})
	stats := tree.Depths()
	fmt.Fprintf(w, "\nMAX DEPTH: %d\n", tree.MaxDepth())
	fmt.Fprintf(w, "LEAVES: %s  MIN LEAF DEPTH: %d  MEAN LEAF DEPTH: %.2f\n",
		humanize.Comma(int64(stats.Leaves)), stats.Min, stats.Mean)
	_, err := fmt.Fprintf(w, "FINGERPRINT: %016x\n", tree.Fingerprint())
	return err
}
