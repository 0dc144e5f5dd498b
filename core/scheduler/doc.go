// Package scheduler assigns screenplay scenes to shooting days under a
// per-day hour budget. Scenes are grouped by location, ordered within a
// location by a pluggable strategy, and packed greedily day by day with a
// relocation guard that keeps the crew from moving to a new location for
// a short remainder of the day.
//
// Scheduling is a pure batch computation: one scene list and one
// configuration in, one ordered day list out. Calls are independent and
// safe to run concurrently. Ranking is recomputed per day, so the worst
// case is O(days * locations * scenes); at screenplay scale (hundreds of
// scenes) this is negligible, but it is not linear.
package scheduler
