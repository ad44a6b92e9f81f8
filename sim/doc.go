// Package sim provides the discrete-event simulation engine for derbysim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - state.go: Match states (pre-game → jam → lineup → interval → post-game)
//   - activity.go: per-skater activities (on track, to box, in box, returning, held)
//   - match.go: the tick loop and top-level transitions
//   - jam.go: jam start, per-tick dispatch, jam end and box reconciliation
//   - skater_tick.go: one skater's transition for one tick
//   - fielding.go: lineup selection at jam start
//
// # Time
//
// One Tick is 1000 ms of simulated time. Events that happen during a tick are
// stamped somewhere inside it, so recorded times have millisecond resolution.
//
// # Randomness
//
// All randomness comes from Streams derived from a PartitionedRNG. The engine
// stream's draw order is part of the model: the same seed and configuration
// always produce the same bout.
//
// # Sub-packages
//   - sim/playbyplay/: the append-only play-by-play tree the engine writes to
//   - sim/trace/: decision trace and summary statistics
//   - sim/roster/: team, skater and officiating crew generation
//   - sim/export/: scoreboard JSON and YAML event-log writers
//   - sim/bout/: wiring of seed, rosters, streams and match
package sim
