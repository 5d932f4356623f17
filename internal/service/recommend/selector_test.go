package recommend

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
)

func booksWithIDs(ids ...string) []book.Book {
	out := make([]book.Book, 0, len(ids))
	for _, id := range ids {
		out = append(out, book.Book{ID: id, Title: "title " + id})
	}
	return out
}

func idsOf(books []book.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name    string
		all     []book.Book
		exclude string
		limit   int
		want    []string
	}{
		{name: "skips excluded in the middle", all: booksWithIDs("1", "2", "3", "4"), exclude: "2", limit: 3, want: []string{"1", "3", "4"}},
		{name: "takes first three", all: booksWithIDs("1", "2", "3", "4", "5"), exclude: "5", limit: 3, want: []string{"1", "2", "3"}},
		{name: "excluded first", all: booksWithIDs("1", "2", "3", "4", "5"), exclude: "1", limit: 3, want: []string{"2", "3", "4"}},
		{name: "two records no padding", all: booksWithIDs("1", "2"), exclude: "1", limit: 3, want: []string{"2"}},
		{name: "single record", all: booksWithIDs("1"), exclude: "1", limit: 3, want: []string{}},
		{name: "empty collection", all: nil, exclude: "1", limit: 3, want: []string{}},
		{name: "unknown exclude", all: booksWithIDs("1", "2", "3", "4"), exclude: "999", limit: 3, want: []string{"1", "2", "3"}},
		{name: "zero limit", all: booksWithIDs("1", "2"), exclude: "1", limit: 0, want: []string{}},
		{name: "negative limit", all: booksWithIDs("1", "2"), exclude: "1", limit: -1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.all, tt.exclude, tt.limit)
			if diff := cmp.Diff(tt.want, idsOf(got)); diff != "" {
				t.Fatalf("Recommend(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecommendProperties(t *testing.T) {
	for n := 0; n <= 6; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("b%d", i)
		}
		all := booksWithIDs(ids...)

		for _, exclude := range ids {
			got := Recommend(all, exclude, DefaultLimit)

			want := DefaultLimit
			if n-1 < want {
				want = n - 1
			}
			if len(got) != want {
				t.Fatalf("n=%d exclude=%s: got %d books, want %d", n, exclude, len(got), want)
			}

			pos := -1
			for _, b := range got {
				if b.ID == exclude {
					t.Fatalf("n=%d: excluded id %s returned", n, exclude)
				}
				idx := indexOf(all, b.ID)
				if idx <= pos {
					t.Fatalf("n=%d exclude=%s: output is not a subsequence: %v", n, exclude, idsOf(got))
				}
				pos = idx
			}

			again := Recommend(all, exclude, DefaultLimit)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Fatalf("Recommend is not deterministic (-first +second):\n%s", diff)
			}
		}
	}
}

func TestRecommendDoesNotAliasInput(t *testing.T) {
	all := booksWithIDs("1", "2", "3", "4")

	got := Recommend(all, "9", 3)
	got[0].Title = "changed"

	if all[0].Title != "title 1" {
		t.Fatalf("input mutated through result: %q", all[0].Title)
	}
}

func indexOf(books []book.Book, id string) int {
	for i, b := range books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
