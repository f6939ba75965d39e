package fingerprint

// allowedHeaders is the exact-match allow-list from spec.md §4.1. Headers
// not in this set MUST NOT appear in the fingerprint context.
var allowedHeaders = map[string]bool{
	"x-model-id":           true,
	"x-adapter-ids":        true,
	"x-prompt-template-id": true,
	"x-approval-status":    true,
}

// IsAllowedHeader reports whether name (already lower-cased by the caller)
// is part of the fingerprint header allow-list.
func IsAllowedHeader(name string) bool {
	return allowedHeaders[name]
}
