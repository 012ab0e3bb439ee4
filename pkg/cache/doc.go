// Package cache provides small in-memory caches.
//
// Seen is a bounded set that forgets the least recently seen key once it is
// full. It backs message deduplication where an unbounded map would grow for
// the life of the process:
//
//	seen := cache.NewSeen[string](1000)
//	if seen.Add(msg) {
//		log.Warn(msg)
//	}
package cache
