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
	"testing"
)

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("storage.pg", 503))
	must(t, tr.Insert("auth.jwt.verify", 401))
	must(t, tr.Insert("payment.card.fraud.score", 402))

	tests := []struct {
		key     string
		wantVal int
		wantPat string
	}{
		{"storage.pg", 503, "storage.pg"},
		{"storage.pg.connect_timeout", 503, "storage.pg"},
		{"auth.jwt.verify", 401, "auth.jwt.verify"},
		{"payment.card.fraud.score.high", 402, "payment.card.fraud.score"},
	}
	for _, tt := range tests {
		v, ok, p := tr.MatchWithPattern(tt.key)
		if !ok || v != tt.wantVal || p != tt.wantPat {
			t.Fatalf("MatchWithPattern(%q) => ok=%v v=%v p=%q; want v=%d p=%q", tt.key, ok, v, p, tt.wantVal, tt.wantPat)
		}
		if v2, ok2 := tr.Match(tt.key); !ok2 || v2 != v {
			t.Fatalf("Match(%q) disagrees with MatchWithPattern: ok=%v v=%v", tt.key, ok2, v2)
		}
	}

	for _, miss := range []string{"", "storage", "storage.mysql", "auth.jwt", "stor"} {
		if _, ok := tr.Match(miss); ok {
			t.Fatalf("Match(%q) unexpectedly matched", miss)
		}
	}
}

func TestSegmentBoundary(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("auth.jwt", 1))

	if _, ok := tr.Match("auth.j"); ok {
		t.Fatalf("partial segment must not match")
	}
	if _, ok := tr.Match("auth.jwtx"); ok {
		t.Fatalf("longer segment must not match")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("auth.*.verify", 498))
	must(t, tr.Insert("auth.jwt.verify", 401))

	if v, ok, p := tr.MatchWithPattern("auth.jwt.verify"); !ok || v != 401 || p != "auth.jwt.verify" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("auth.saml.verify.token"); !ok || v != 498 || p != "auth.*.verify" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("auth.verify"); ok {
		t.Fatalf("wildcard should not match zero segments")
	}
}

func TestLPM_PrefersDeeperWildcardPath(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	// an exact branch that stops shallower than the wildcard path
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok := tr.Match("a.b.d"); !ok || v != 1 {
		t.Fatalf("LPM must fall back to the shallower exact rule: ok=%v v=%v", ok, v)
	}
}

func TestInsert_Replaces(t *testing.T) {
	tr := New[string]()
	must(t, tr.Insert("storage.pg", "old"))
	must(t, tr.Insert("storage.pg", "new"))

	if v, ok := tr.Match("storage.pg.read"); !ok || v != "new" {
		t.Fatalf("second insert must replace: ok=%v v=%q", ok, v)
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*", "a.", "1a", "a-b"} {
		if err := tr.Insert(p, 1); !errors.Is(err, ErrInvalidPrefix) {
			t.Fatalf("Insert(%q) error = %v, want ErrInvalidPrefix", p, err)
		}
	}

	for _, key := range []string{"UPPER.case", "a..b", "*"} {
		if _, ok := tr.Match(key); ok {
			t.Fatalf("Match(%q) should be false on an empty trie", key)
		}
	}
}

func TestNilTrie(t *testing.T) {
	var tr *Trie[int]
	if err := tr.Insert("a.b", 1); !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("Insert on nil trie: %v", err)
	}
	if _, ok, p := tr.MatchWithPattern("a.b"); ok || p != "" {
		t.Fatalf("MatchWithPattern on nil trie must miss")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
