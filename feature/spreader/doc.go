// Package spreader detects how an infection spreads through a chain of meetings.
//
// A run ingests a roster of people and a chronological meetings log, marks
// the origin person (first line of the log) with probability 1.0, and walks
// the remaining meetings in file order. Each meeting sets the infected
// person's probability to the infector's probability times a transmission
// factor derived from distance and duration:
//
//	factor = (duration * MinDistance) / (distance * MaxTime)
//
// A later meeting overwrites an earlier one for the same infected person.
// Probabilities are never clamped, so factors above 1 can push a value past 1.
//
// # Pipeline
//
//   - Ingest: ReadPeople builds a Store from "<name> <id> <age>" lines.
//   - Order: the Store is sorted by identifier so Lookup can resolve ids.
//   - Propagate: Propagate applies meetings in order.
//   - Classify: the Store is re-sorted by probability and walked from the
//     highest probability down; every person lands in one Tier.
//   - Report: WriteReport renders one templated line per person.
//
// # Ties
//
// People with probabilities within Epsilon of each other are listed by
// ascending id.
//
// # HTTP Endpoints
//
//   - POST /analysis : Runs an analysis on uploaded people and meetings files (supports ?publish=true).
//   - GET /analysis/:id : Returns a recorded run.
//   - GET /analysis/:id/report : Downloads a published report.
package spreader
