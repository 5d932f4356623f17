package book

import (
	"context"
	"testing"
)

func TestMemoryStoreFindByID(t *testing.T) {
	store := NewMemoryStore(Seed())
	ctx := context.Background()

	got, ok, err := store.FindByID(ctx, "2")
	if err != nil || !ok {
		t.Fatalf("expected book 2, got ok=%v err=%v", ok, err)
	}
	if got.Title != "プログラミング言語Go" {
		t.Fatalf("unexpected book: %+v", got)
	}

	if _, ok, _ := store.FindByID(ctx, "999"); ok {
		t.Fatal("expected not found for missing id")
	}
}

func TestMemoryStoreIsolatedFromCaller(t *testing.T) {
	items := Seed()
	store := NewMemoryStore(items)
	items[0].Title = "changed"

	list, _ := store.List(context.Background())
	if list[0].Title == "changed" {
		t.Fatal("store shares backing array with caller")
	}

	list[1].Title = "changed"
	again, _ := store.List(context.Background())
	if again[1].Title == "changed" {
		t.Fatal("List exposes internal slice")
	}
}

func TestFindIsExactMatch(t *testing.T) {
	books := []Book{{ID: "10"}, {ID: "1"}}

	got, ok := Find(books, "1")
	if !ok || got.ID != "1" {
		t.Fatalf("Find(1) = %+v, %v", got, ok)
	}
	if _, ok := Find(books, " 1"); ok {
		t.Fatal("Find must not trim or prefix-match")
	}
	if _, ok := Find(nil, "1"); ok {
		t.Fatal("Find on empty collection must report not found")
	}
}
