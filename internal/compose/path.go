package compose

import "strings"

// FirstWildcard is the path segment that selects the first value of a
// container regardless of its key, e.g. "networks/:first:/aliases".
const FirstWildcard = ":first:"

// Resolve walks a slash-separated path from n. A missing step yields nil,
// which callers treat as "not set" rather than as an error.
func Resolve(path string, n *Node) *Node {
	cur := n
	for _, seg := range strings.Split(path, "/") {
		if cur == nil {
			return nil
		}
		if seg == FirstWildcard {
			cur = cur.First()
			continue
		}
		cur = cur.Get(seg)
	}
	return cur
}
