package banhammer

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTableZeroSize(t *testing.T) {
	if _, err := NewHashTable(0, false); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("should error out for size 0, got %v", err)
	}
}

func TestTableInsertLookup(t *testing.T) {
	table, _ := NewHashTable(100, false)
	table.InsertKey("bad")
	table.Insert("ignorant", "uninformed")
	node, ok := table.Lookup("ignorant")
	if !ok {
		t.Fatal("ignorant should be in table")
	}
	if value, ok := node.Value(); !ok || value != "uninformed" {
		t.Errorf("ignorant should map to uninformed, got %q", value)
	}
	if node, ok := table.Lookup("bad"); !ok || node.HasValue() {
		t.Error("bad should be in table without a value")
	}
	if _, ok := table.Lookup("good"); ok {
		t.Error("good should not be in table")
	}
}

func TestTableDuplicateKeepsFirst(t *testing.T) {
	table, _ := NewHashTable(10, false)
	table.Insert("k", "v1")
	table.Insert("k", "v2")
	node, _ := table.Lookup("k")
	if value, _ := node.Value(); value != "v1" {
		t.Errorf("value should be v1, got %v", value)
	}
}

func TestTableCountsDistinctBuckets(t *testing.T) {
	table, _ := NewHashTable(1, false)
	for i := 0; i < 10; i++ {
		table.InsertKey(fmt.Sprintf("w%d", i))
	}
	if table.Count() != 1 {
		t.Errorf("all keys share one bucket, count should be 1, got %v", table.Count())
	}
	for i := 0; i < 10; i++ {
		if _, ok := table.Lookup(fmt.Sprintf("w%d", i)); !ok {
			t.Errorf("w%d should be in table", i)
		}
	}
}

func TestTableLoadFourOfTen(t *testing.T) {
	table, _ := NewHashTable(10, false)
	buckets := make(map[uint]bool)
	for i := 0; table.Count() < 4; i++ {
		key := fmt.Sprintf("w%d", i)
		table.InsertKey(key)
		buckets[table.getIndex(key)] = true
	}
	if len(buckets) != 4 {
		t.Fatalf("expected 4 distinct buckets, got %v", len(buckets))
	}
	if load := 100 * table.Load(); load != 40 {
		t.Errorf("load should be 40%%, got %v%%", load)
	}
}

func TestTableMoveToFront(t *testing.T) {
	table, _ := NewHashTable(1, true)
	table.InsertKey("a")
	table.InsertKey("b")
	table.InsertKey("c")
	node, _ := table.Lookup("a")
	if table.lists[0].Front() != node {
		t.Fatal("a should be first in its bucket")
	}
	links := table.Links()
	table.Lookup("a")
	if table.Links() != links {
		t.Errorf("repeat lookup walked %v links", table.Links()-links)
	}
}

func TestTableSeekStats(t *testing.T) {
	table, _ := NewHashTable(1, false)
	table.InsertKey("a")
	table.InsertKey("b")
	table.Lookup("a")
	if table.Seeks() != 3 || table.Links() != 2 {
		t.Errorf("expected 3 seeks and 2 links, got %v and %v", table.Seeks(), table.Links())
	}
	if table.AverageSeekLength() != 2.0/3.0 {
		t.Errorf("unexpected average seek length %v", table.AverageSeekLength())
	}
	other, _ := NewHashTable(1, false)
	if other.Seeks() != 0 {
		t.Errorf("stats should not leak between tables, got %v", other.Seeks())
	}
}

func TestTableEmptyBucketNoSeek(t *testing.T) {
	table, _ := NewHashTable(10, false)
	table.Lookup("bad")
	if table.Seeks() != 0 {
		t.Errorf("lookup in an empty bucket should not count a seek, got %v", table.Seeks())
	}
}

func TestTableString(t *testing.T) {
	table, _ := NewHashTable(3, false)
	table.Insert("ignorant", "uninformed")
	s := table.String()
	for i := 0; i < 3; i++ {
		if !strings.Contains(s, fmt.Sprintf("\n[%d]\n", i)) {
			t.Errorf("rendering should label bucket %d: %q", i, s)
		}
	}
	if !strings.Contains(s, "ignorant->uninformed\n") {
		t.Errorf("rendering should contain the entry: %q", s)
	}
}

func TestTableStringSingleBucket(t *testing.T) {
	table, _ := NewHashTable(1, false)
	table.InsertKey("bad")
	table.Insert("ignorant", "uninformed")
	if want := "\n[0]\nignorant->uninformed\nbad\n"; table.String() != want {
		t.Errorf("rendering should be %q, got %q", want, table.String())
	}
}

func TestTableNilAndClose(t *testing.T) {
	var table *HashTable
	table.InsertKey("bad")
	if _, ok := table.Lookup("bad"); ok {
		t.Error("nil table should not find anything")
	}
	if table.Size() != 0 || table.Count() != 0 || table.Seeks() != 0 {
		t.Error("nil table should report zeros")
	}
	table.Close()

	table, _ = NewHashTable(10, false)
	table.InsertKey("bad")
	table.Close()
	if table.Count() != 0 {
		t.Errorf("count should be 0 after close, got %v", table.Count())
	}
	if _, ok := table.Lookup("bad"); ok {
		t.Error("bad should be gone after close")
	}
}

func TestTableWithHashers(t *testing.T) {
	for _, name := range []string{"murmur", "metro", "xxhash"} {
		hasher, _ := HasherByName(name)
		table, _ := NewHashTable(16, true, WithHasher(hasher))
		for i := 0; i < 100; i++ {
			table.Insert(fmt.Sprintf("old%d", i), fmt.Sprintf("new%d", i))
		}
		for i := 0; i < 100; i++ {
			node, ok := table.Lookup(fmt.Sprintf("old%d", i))
			if !ok {
				t.Fatalf("old%d should be in table with %v", i, name)
			}
			if value, _ := node.Value(); value != fmt.Sprintf("new%d", i) {
				t.Errorf("old%d should map to new%d with %v, got %v", i, i, name, value)
			}
		}
	}
}
