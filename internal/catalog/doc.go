// Package catalog is the query engine behind the dinosaur catalog: predicate
// filtering, offset/limit windows, free-text search and grouped statistics.
//
// Every function here is a pure transformation over a snapshot of records
// handed out by a store. Nothing is mutated, so concurrent callers can share
// one snapshot freely.
//
// Two filter contracts are kept literally and are easy to misread:
//
//   - MinLength/MaxLength exclude records whose length is unknown.
//   - MinAge is compared against the record's range end (AgeEndMya >= MinAge)
//     and MaxAge against its range start (AgeStartMya <= MaxAge). Because ages
//     count backwards from the present, this keeps records whose range reaches
//     into [MinAge, MaxAge] rather than comparing a single field to both bounds.
package catalog
