package docker

import "strings"

const defaultTag = "latest"

// ParseImageReference splits an image reference into repository and tag.
// The last ':' starts the tag unless what follows contains '/', in which case
// the colon belongs to a registry host:port and the tag defaults to "latest".
func ParseImageReference(reference string) (repository, tag string) {
	i := strings.LastIndex(reference, ":")
	if i < 0 {
		return reference, defaultTag
	}

	candidate := reference[i+1:]
	if strings.Contains(candidate, "/") {
		return reference, defaultTag
	}
	if candidate == "" {
		return reference[:i], defaultTag
	}

	return reference[:i], candidate
}
