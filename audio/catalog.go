package audio

import (
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
)

// CueKey selects a music resource: CueIntro or a level number.
type CueKey int

// CueIntro is the title screen cue.
const CueIntro CueKey = 0

// MaxLevel is the highest level with its own cue.
const MaxLevel = 15

// Level returns the cue key of a level.
func Level(n int) CueKey {
	return CueKey(n)
}

func (k CueKey) String() string {
	if k == CueIntro {
		return "intro"
	}
	return "level " + strconv.Itoa(int(k))
}

// ParseCueKey parses "intro" or a level number.
func ParseCueKey(s string) (CueKey, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "intro" {
		return CueIntro, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(s, "level")))
	if err != nil || n < 1 || n > MaxLevel {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCue, s)
	}
	return Level(n), nil
}

// CatalogEntry holds one cue for listing
type CatalogEntry struct {
	Cue  CueKey
	Path string
}

// Catalog is an immutable cue to track path table.
type Catalog struct {
	tracks map[CueKey]string
}

// NewCatalog copies tracks into a new catalog.
func NewCatalog(tracks map[CueKey]string) *Catalog {
	c := &Catalog{tracks: make(map[CueKey]string, len(tracks))}
	for k, p := range tracks {
		c.tracks[k] = p
	}
	return c
}

// DefaultCatalog returns the catalog built from TrackPaths.
func DefaultCatalog() *Catalog {
	return NewCatalog(TrackPaths)
}

// WithRoot returns a copy of the catalog with every path placed under root.
// An empty root returns the catalog itself.
func (c *Catalog) WithRoot(root string) *Catalog {
	if root == "" {
		return c
	}
	rooted := &Catalog{tracks: make(map[CueKey]string, len(c.tracks))}
	for k, p := range c.tracks {
		if strings.Contains(root, "://") {
			rooted.tracks[k] = strings.TrimSuffix(root, "/") + "/" + strings.TrimPrefix(p, "/")
		} else {
			rooted.tracks[k] = path.Join(root, p)
		}
	}
	return rooted
}

// Resolve returns the track path for a cue.
func (c *Catalog) Resolve(k CueKey) (string, bool) {
	p, ok := c.tracks[k]
	return p, ok
}

// Len returns the number of cues.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Entries returns all cues, intro first and then by level
func (c *Catalog) Entries() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(c.tracks))
	for k, p := range c.tracks {
		entries = append(entries, CatalogEntry{Cue: k, Path: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Cue < entries[j].Cue
	})
	return entries
}
