package driven

// ConfigStore is a flat, read-only view of configuration. Nested tables are
// addressed with dotted keys such as "sheet.id" or "targets.roadmap.path".
// Values keep the type the backing format decoded them to; callers convert.
type ConfigStore interface {
	// Lookup returns the value stored under key and whether it is set.
	Lookup(key string) (any, bool)

	// Keys returns the set keys that start with prefix, sorted.
	Keys(prefix string) []string

	// Path names the source of the values, for messages.
	Path() string
}
