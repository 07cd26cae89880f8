package explorer_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvbound/explorer"
	"github.com/katalvlaran/lvbound/oracle"
	"github.com/katalvlaran/lvbound/structures"
)

// ExampleExplorer enumerates the five binary trees with three nodes.
func ExampleExplorer() {
	space, err := structures.BinaryTreeSpace(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	ex, err := explorer.New(space)
	if err != nil {
		fmt.Println(err)
		return
	}
	o := oracle.Traced(structures.BinaryTreeRepOK)

	valid := 0
	for {
		c, ok := ex.NextTestCase()
		if !ok {
			break
		}
		verdict, err := o.Evaluate(context.Background(), c)
		if err != nil {
			fmt.Println(err)
			return
		}
		if err = ex.Observe(verdict.Trace); err != nil {
			fmt.Println(err)
			return
		}
		if verdict.Valid {
			valid++
			ex.ReportCurrentAsValid()
		}
	}
	fmt.Printf("explored=%d valid=%d\n", ex.Explored(), valid)
	// Output: explored=63 valid=5
}
