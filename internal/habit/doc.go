// Package habit implements habit tracking: per-account habit CRUD and
// per-date completion records with a toggle operation.
package habit
