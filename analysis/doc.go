// Package analysis provides the shared primitives for the offline analysis
// tools that post-process branch-and-bound policy experiments.
//
// # Reading Guide
//
//   - value.go: Value, a float that may be Unknown (failed or rejected run)
//   - textfile.go: last-line readers and token parsing for the whitespace
//     record formats written by the experiment harness and the solver
//
// # Sub-packages
//
//   - analysis/confmat/: cross-evaluation score matrix and heatmap rendering
//   - analysis/features/: linear policy weight ranking by feature and depth
//   - analysis/ttest/: paired t-test over two numeric columns
//
// The sub-packages share no runtime state; each backs one subcommand in cmd/.
package analysis
