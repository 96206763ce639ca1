// Package sim is the disk head-scheduling engine: six classical policies
// (FCFS, SSTF, SCAN, C-SCAN, LOOK, C-LOOK) over a shared request model,
// producing a deterministic head-movement trace and aggregate statistics.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - request.go: Request lifecycle (pending → completed) and eligibility
//   - run.go: shared seek-cost and clock rules, trace recording
//   - simulate.go: selector validation and dispatch to the six policies
//
// # Model
//
// Each simulation call is a one-shot deterministic computation: the caller's
// requests are cloned into a private working set, a policy loop services them
// one at a time, and the run ends when every request is completed. Seek cost
// is absolute track distance; a request already under the head costs 0 seek
// but still advances the clock by 1 tick of service time. Arrival times gate
// admission: when nothing eligible remains, the clock jumps forward to the
// next pending arrival rather than servicing out of order.
//
// The engine holds no state across calls, so concurrent simulations need no
// coordination.
package sim
