// Package builder generates deterministic *graph.Graph fixtures for tests,
// examples and benchmarks of the shortest-path and spanning-tree engines.
//
// The package offers the following key components:
//
//   - Topology factories, each returning (*graph.Graph, error):
//     – Path(n):                 P_n, edges (i-1)-i.
//     – Cycle(n):                C_n, Path plus (n-1)-0.
//     – Star(n):                 center 0 joined to leaves 1..n-1.
//     – Complete(n):             K_n, every unordered pair.
//     – Grid(rows, cols):        4-neighborhood lattice, vertex r*cols + c.
//     – RandomSparse(n, p):      Erdős–Rényi-like, each pair kept with probability p.
//     – RandomConnected(n, m):   random spanning tree plus m extra random edges.
//   - Configuration primitives:
//     – Option:                  a function that mutates builderConfig before use.
//     – builderConfig:           holds RNG, weight function, direction and weight policy.
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn:         constant DefaultEdgeWeight.
//     – WithConstantWeight:      fixed non-negative value.
//     – WithUniformWeight:       uniform on [min, max].
//     – WithDistinctWeights:     a seeded permutation of 1..E, so no two edges tie.
//
// Guarantees:
//
//   - Determinism: equal parameters, options and seed produce identical graphs,
//     including edge insertion order.
//   - Option validation never panics: a meaningless option value is recorded
//     and surfaced as ErrOptionViolation by the factory.
//   - Sentinel errors are wrapped with the factory name for context; branch
//     with errors.Is.
//
// Error priority when several validations fail:
//
//	ErrOptionViolation → ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource.
package builder
