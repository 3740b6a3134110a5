package session

import "github.com/minewise/pitpixie/internal/core"

// References returns the unique grounding-pair titles in first-seen order.
func References(pairs []core.GroundingPair) []string {
	seen := make(map[string]struct{}, len(pairs))
	refs := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if _, ok := seen[pair.Title]; ok {
			continue
		}
		seen[pair.Title] = struct{}{}
		refs = append(refs, pair.Title)
	}
	return refs
}
