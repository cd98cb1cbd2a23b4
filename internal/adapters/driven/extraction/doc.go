// Package extraction provides the pieces shared by every extraction
// service adapter: the fixed instruction prompt embedding the target JSON
// schema, response parsing into the workout program, and the retry policy
// for transient submission failures.
package extraction
