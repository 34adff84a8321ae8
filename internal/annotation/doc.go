// Package annotation turns one annotated source unit into a cleaned listing,
// the list of dependency references it pulled in, and the command table built
// from its /** ... */ metadata spans.
//
// Parsing runs in two passes. The line pass drops build-only directives,
// records #include references and splices digests into /// start-hash ...
// /// end-hash regions. The span pass excises metadata spans from the joined
// lines and merges their "* Command: value" entries into the command table.
package annotation
