// Command planexplain assembles the sample plan plancli builds and
// prints its explain tree — a human-runnable smoke test exercising
// plan, eval, planwalk and planner together end to end.
package main

import (
	"fmt"
	"os"

	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/plancli"
	"github.com/alvinhenrick/tajo/planner"
	"github.com/alvinhenrick/tajo/planwalk"
	"github.com/spf13/cobra"
)

var splitGroupBy bool

func main() {
	root := &cobra.Command{
		Use:   "planexplain",
		Short: "Assemble a sample logical plan and print its explain tree.",
		RunE:  run,
	}
	root.Flags().BoolVar(&splitGroupBy, "split-group-by", false,
		"apply planner.TransformGroupbyTo2P to the sample plan's group-by node before printing")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	pf := plan.NewPIDFactory()
	sample := plancli.BuildSamplePlan(pf)

	if splitGroupBy {
		found := planwalk.FindTopNode(sample, plan.GROUP_BY)
		gb, ok := found.(*plan.GroupByNode)
		if !ok {
			return fmt.Errorf("planexplain: sample plan has no group-by node")
		}
		if _, err := planner.TransformGroupbyTo2P(pf, gb); err != nil {
			return fmt.Errorf("planexplain: %w", err)
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), plancli.Explain(sample))
	return nil
}
