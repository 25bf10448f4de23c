// Package engine implements the equipment combination search.
//
// Armor search runs in two phases over the candidate items of each body
// part. The core phase enumerates every subset of items that cover the
// hardest requirement on their own, at most one per part. For every core
// leaf the supplement phase fills the parts still vacant from the full
// candidate group and keeps the sets whose shortage is closed.
//
// Results are returned in visitation order and are not deduplicated: a set
// can be reached through both phases and will then appear twice. Callers
// that present results to players can use UniqueCombinations.
//
// Weapon search is a plain filter over the weapon catalog.
//
// All functions are pure. Catalog items are only read, so concurrent calls
// over the same catalog are safe.
package engine
