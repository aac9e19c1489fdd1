package main

import (
	"reflect"
	"testing"
)

func drain(f *Frontier) []string {
	var out []string
	for {
		dir, ok := f.Next()
		if !ok {
			return out
		}
		out = append(out, dir)
	}
}

func TestNewFrontierDropsEmptyAndDuplicateRoots(t *testing.T) {
	f := NewFrontier("C:\\Program Files", "", "D:\\", "C:\\Program Files", "E:\\")
	got := drain(f)
	want := []string{"C:\\Program Files", "D:\\", "E:\\"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("drain() = %v; want %v", got, want)
	}
}

func TestFrontierAppendGoesBehindQueuedEntries(t *testing.T) {
	f := NewFrontier("a", "b", "c")

	first, _ := f.Next()
	if first != "a" {
		t.Fatalf("Next() = %q; want a", first)
	}
	// Children of "a" must not jump ahead of b and c
	f.Append("a/1", "a/2")

	got := drain(f)
	want := []string{"b", "c", "a/1", "a/2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("remaining = %v; want %v", got, want)
	}
}

func TestFrontierNeverRevisits(t *testing.T) {
	f := NewFrontier("root")
	f.Next()
	f.Append("root/x")
	f.Next()

	if _, ok := f.Next(); ok {
		t.Fatal("Next() returned an entry from an exhausted frontier")
	}
	// Appending after exhaustion resumes at the new entry only
	f.Append("root/x/y")
	dir, ok := f.Next()
	if !ok || dir != "root/x/y" {
		t.Errorf("Next() = %q, %v; want root/x/y, true", dir, ok)
	}

	want := []string{"root", "root/x", "root/x/y"}
	if got := f.Scanned(); !reflect.DeepEqual(got, want) {
		t.Errorf("Scanned() = %v; want %v", got, want)
	}
	if f.Len() != 3 {
		t.Errorf("Len() = %d; want 3", f.Len())
	}
}

func TestEmptyFrontier(t *testing.T) {
	f := NewFrontier()
	if _, ok := f.Next(); ok {
		t.Error("Next() on empty frontier returned ok")
	}
	if len(f.Scanned()) != 0 {
		t.Errorf("Scanned() = %v; want empty", f.Scanned())
	}
}
