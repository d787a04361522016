// Package dynamo provides the concurrency primitive shared by the
// particle simulation kernel.
//
// It used to carry a full generic-ODE simulation layer (State, System,
// Integrator, Simulator); that layer duplicated internal/sim and has been
// trimmed away in favor of the kernel's own animation/solver packages. What
// remains is one standalone collaborator:
//
//   - [ParallelFor]: the single parallel-for-over-a-range primitive. It is
//     called by ParallelHashGridSearch's build (key computation and
//     gather) and by BaseSolver's force accumulation (gravity and drag),
//     integration and collision passes. SPH density update, SPH force
//     accumulation and the commit copy run serially.
//
// Domain errors live in internal/simerr.
package dynamo
