// Package search finds candidate directories below a set of roots when a
// token does not resolve directly.
//
// The search itself sits behind the narrow Searcher interface. FdSearcher
// shells out to fd; WalkSearcher walks an afero filesystem in process. Both
// match the glob `*token*` against directory base names with fd's smart-case
// rule (a token without upper-case letters matches ignoring case), honour a
// maximum depth, skip hidden directories unless asked, and never descend
// into excluded directories.
//
// Search runs a Searcher over every root in order, concatenates the results,
// removes duplicate paths keeping the first occurrence and finally drops
// paths under noisy prefixes. An empty result is not an error.
package search
