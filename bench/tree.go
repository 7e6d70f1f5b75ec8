package bench

import (
	"fmt"

	"github.com/colorfulnotion/branchcost/common"
	"github.com/xlab/treeprint"
)

// SummaryTree renders the outcome as a tree for --verbose. Colors follow
// common.ColorsEnabled.
func SummaryTree(o *Outcome) string {
	tree := treeprint.NewWithRoot(common.Colorize(common.ColorBrightWhite, "branch benchmark"))

	cfg := tree.AddBranch(common.Colorize(common.ColorBlue, "config"))
	cfg.AddMetaNode("length", o.Config.Length)
	cfg.AddMetaNode("range", fmt.Sprintf("[%d, %d]", o.Config.Low, o.Config.High))
	cfg.AddMetaNode("seed", o.Config.Seed)
	cfg.AddMetaNode("threshold", o.Config.Threshold)

	addMeasurement(tree, "branch-heavy", o.Branching)
	addMeasurement(tree, "branch-free", o.Branchless)

	speedColor := common.ColorGreen
	if s := o.Speedup(); s < 1 {
		speedColor = common.ColorYellow
	}
	tree.AddMetaNode("speedup", common.Colorize(speedColor, FormatSpeedup(o.Speedup())+"x"))

	if !o.Consistent() {
		tree.AddNode(common.Colorize(common.ColorRed, "sums differ"))
	}
	return tree.String()
}

func addMeasurement(tree treeprint.Tree, name string, m Measurement) {
	br := tree.AddBranch(common.Colorize(common.ColorCyan, name))
	br.AddMetaNode("sum", m.Sum)
	br.AddMetaNode("elapsed", m.Elapsed)
}
