package model

import (
	"regexp"
	"strings"

	"github.com/postwave/postwave/pkg/domain/types"
)

var hashtagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// ExtractHashtags returns the lowercased, deduplicated tags of the content
// in order of first appearance
func ExtractHashtags(content string) []types.Hashtag {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)
	tags := make([]types.Hashtag, 0, len(matches))
	seen := make(map[types.Hashtag]bool, len(matches))

	for _, m := range matches {
		tag := types.Hashtag(strings.ToLower(m[1]))
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	return tags
}

// NormalizeHashtag trims the input, drops a leading '#' and lowercases it
func NormalizeHashtag(tag string) types.Hashtag {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "#")
	return types.Hashtag(strings.ToLower(tag))
}

// TrendingHashtag is a tag with the number of published posts using it
type TrendingHashtag struct {
	Tag   types.Hashtag `json:"tag"`
	Count int           `json:"count"`
}
