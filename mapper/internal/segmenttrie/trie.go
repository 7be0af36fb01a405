/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys such as
// "storage.pg.connect_timeout". Each node is one segment; the wildcard "*"
// matches exactly one segment. Lookups return the longest matching prefix,
// so a more specific rule wins over a shorter one.
//
// A Trie is not safe for concurrent Insert; concurrent lookups on a trie that
// is no longer modified are safe.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for MatchWithPattern.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains invalid characters, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix:
//
//	"storage.pg"
//	"auth.jwt.verify"
//	"auth.*.verify"
//
// A prefix made only of "*" segments is rejected because it would catch
// everything. Inserting the same prefix twice replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == "*" {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix of key that has one.
// Exact segments and "*" branches are both explored. An invalid key, or a key
// nothing matches, yields the zero value and false.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched prefix as it was
// inserted. It does not allocate on the lookup path.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := lookup[T]{depth: -1}
	best.walk(t, key, 0, 0)
	if best.node == nil {
		return zero, false, ""
	}
	return best.node.val, true, best.node.pattern
}

// lookup tracks the deepest valued node seen during a traversal.
type lookup[T any] struct {
	node  *Trie[T]
	depth int
}

func (l *lookup[T]) walk(n *Trie[T], key string, off, depth int) {
	if n.hasVal && depth > l.depth {
		l.node, l.depth = n, depth
	}
	if off >= len(key) {
		return
	}
	end, ok := nextSegment(key, off)
	if !ok {
		return
	}
	next := end
	if next < len(key) {
		next++ // skip '.'
	}
	if child, ok := n.children[key[off:end]]; ok {
		l.walk(child, key, next, depth+1)
	}
	if child, ok := n.children["*"]; ok {
		l.walk(child, key, next, depth+1)
	}
}

// nextSegment scans the segment starting at off and returns its end offset.
// It reports false when the segment does not match [a-z][a-z0-9_]*.
func nextSegment(key string, off int) (int, bool) {
	if c := key[off]; c < 'a' || c > 'z' {
		return 0, false
	}
	i := off + 1
	for ; i < len(key) && key[i] != '.'; i++ {
		if !segmentChar(key[i]) {
			return 0, false
		}
	}
	return i, true
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		if !segmentChar(seg[i]) {
			return false
		}
	}
	return true
}

func segmentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
