package main

// Frontier is the queue of directories still to be scanned while looking for
// the player executable. It only ever grows at the tail and the cursor only
// ever moves forward, so a directory handed out by Next is never returned again.
type Frontier struct {
	dirs   []string
	cursor int
}

// NewFrontier seeds a frontier with the given roots, dropping empty and
// duplicate entries while keeping their order.
func NewFrontier(roots ...string) *Frontier {
	f := &Frontier{}
	seen := make(map[string]bool, len(roots))
	for _, r := range roots {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		f.dirs = append(f.dirs, r)
	}
	return f
}

// Append queues dirs behind everything already queued
func (f *Frontier) Append(dirs ...string) {
	f.dirs = append(f.dirs, dirs...)
}

// Next returns the directory at the cursor and advances it.
// ok is false once the frontier is exhausted.
func (f *Frontier) Next() (dir string, ok bool) {
	if f.cursor >= len(f.dirs) {
		return "", false
	}
	dir = f.dirs[f.cursor]
	f.cursor++
	return dir, true
}

// Len is the total number of directories ever queued
func (f *Frontier) Len() int {
	return len(f.dirs)
}

// Scanned returns the directories already handed out, in order
func (f *Frontier) Scanned() []string {
	out := make([]string, f.cursor)
	copy(out, f.dirs[:f.cursor])
	return out
}
