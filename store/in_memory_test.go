package store

import (
	"fmt"
	"sync"
	"testing"
)

// Interface compliance (compile-time assertion)
var _ ReportStore = (*InMemoryStore)(nil)

func TestInMemoryStore_SaveGetIsolation(t *testing.T) {
	svc := NewInMemoryStore()
	data := []byte("hello")
	if err := svc.Save("r1", "index.md", data); err != nil {
		t.Fatalf("save: %v", err)
	}
	// mutate original slice
	data[0] = 'H'
	out, err := svc.Get("r1", "index.md")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(out) != "hello" { // should not reflect mutation
		t.Fatalf("expected 'hello', got %q", string(out))
	}
	// mutate returned slice
	out[0] = 'x'
	out2, _ := svc.Get("r1", "index.md")
	if string(out2) != "hello" { // original stored should be unchanged
		t.Fatalf("expected isolation, got %q", string(out2))
	}
}

func TestInMemoryStore_ListAndDelete(t *testing.T) {
	svc := NewInMemoryStore()
	if err := svc.Save("r1", "index.md", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := svc.Save("r1", "topic_1.md", []byte("2")); err != nil {
		t.Fatal(err)
	}
	names, err := svc.List("r1")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if err := svc.Delete("r1", "index.md"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get("r1", "index.md"); err == nil {
		t.Fatalf("expected error for deleted page")
	}
	names, _ = svc.List("r1")
	if len(names) != 1 {
		t.Fatalf("expected 1 name after delete, got %d", len(names))
	}
}

func TestInMemoryStore_Concurrency(t *testing.T) {
	svc := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("page%d.md", i%10)
			if err := svc.Save("r1", name, []byte("data")); err != nil {
				t.Errorf("save err: %v", err)
			}
			_, _ = svc.List("r1")
		}(i)
	}
	wg.Wait()
	names, err := svc.List("r1")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Fatalf("expected some pages, got 0")
	}
}
