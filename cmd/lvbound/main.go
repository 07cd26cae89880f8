// Command lvbound enumerates every non-isomorphic instance of a bounded data
// structure that satisfies its invariant.
//
//	lvbound list
//	lvbound space --structure binarytree --size 2
//	lvbound run --structure binarytree --size 4 --print
//	lvbound run --config run.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lvbound:", err)
		stop()
		os.Exit(1)
	}
}
