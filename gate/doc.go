// Package gate computes per-lane traffic-signal priority decisions.
//
// The core is a single pure rule: given parallel slices of waiting-vehicle
// counts (the lane under evaluation) and competing-traffic counts (the
// conflicting cross directions), decide per lane whether to switch that
// lane's signal to GREEN. There is no phase state machine and no cross-lane
// interaction; every call evaluates one snapshot and returns.
//
// Reading guide:
//   - gate.go: the per-lane decision rule and EvaluatePriority
//   - batch.go: EvaluateBatch and the BatchResult record
//   - summary.go: aggregate statistics over a batch
//   - scenario.go: YAML scenario files for the CLI
package gate
