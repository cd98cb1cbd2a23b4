// Package domain defines the core business entities for repsync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - WorkoutProgram: A structured program extracted from a source document
//   - ExerciseTemplate: The tracker's canonical exercise definition
//   - ExerciseMatch / MatchTable: Fuzzy-match results keyed by normalized name
//   - RoutineCreateRequest: The tracker's routine-creation wire format
//   - SourceDocument: Tagged tabular/binary source document representation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
