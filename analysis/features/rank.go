package features

import (
	"fmt"
	"io"
	"math"
	"sort"
)

// Direction is the branching direction a weight applies to.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Position locates a weight in the depth × direction × feature layout.
type Position struct {
	Depth     int
	Direction Direction
	FeatID    int
}

// Decompose maps weight index i to its position for kind.
func Decompose(i int, kind Kind) Position {
	size := kind.Size()
	block := i % (2 * size)
	return Position{
		Depth:     i / (2 * size),
		Direction: Direction(block / size),
		FeatID:    block % size,
	}
}

// Index is the inverse of Decompose.
func (p Position) Index(kind Kind) int {
	size := kind.Size()
	return p.Depth*2*size + int(p.Direction)*size + p.FeatID
}

// Depths is the number of complete depth levels in n weights.
func Depths(n int, kind Kind) int {
	return n / (2 * kind.Size())
}

// Entry is one ranked feature.
type Entry struct {
	Rank   int
	FeatID int
	Name   string
	Weight float64
}

// Abs is the magnitude used for ranking.
func (e Entry) Abs() float64 {
	return math.Abs(e.Weight)
}

// Bucket holds the ranked features of one depth and direction. With
// directions folded, Direction is always Up.
type Bucket struct {
	Depth     int
	Direction Direction
	Entries   []Entry
}

type bucketKey struct {
	depth     int
	direction Direction
}

// Rank groups weights by depth and direction and keeps the topk features of
// each group by absolute weight. Without splitDirection the up and down
// weights of a feature are summed. Ties keep ascending feature id order.
func Rank(weights []float64, kind Kind, topk int, splitDirection bool) []Bucket {
	groups := make(map[bucketKey]map[int]float64)
	for i, w := range weights {
		pos := Decompose(i, kind)
		key := bucketKey{depth: pos.Depth}
		if splitDirection {
			key.direction = pos.Direction
		}
		if groups[key] == nil {
			groups[key] = make(map[int]float64)
		}
		groups[key][pos.FeatID] += w
	}

	keys := make([]bucketKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].depth != keys[j].depth {
			return keys[i].depth < keys[j].depth
		}
		return keys[i].direction < keys[j].direction
	})

	buckets := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		feats := groups[k]
		entries := make([]Entry, 0, len(feats))
		for id, w := range feats {
			entries = append(entries, Entry{FeatID: id, Name: kind.Name(id), Weight: w})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Abs() != entries[j].Abs() {
				return entries[i].Abs() > entries[j].Abs()
			}
			return entries[i].FeatID < entries[j].FeatID
		})
		if topk >= 0 && topk < len(entries) {
			entries = entries[:topk]
		}
		for r := range entries {
			entries[r].Rank = r
		}
		buckets = append(buckets, Bucket{Depth: k.depth, Direction: k.direction, Entries: entries})
	}
	return buckets
}

// WriteRanking prints one block per bucket: a level header followed by
// "rank name |weight| weight" lines.
func WriteRanking(w io.Writer, buckets []Bucket, splitDirection bool) error {
	for _, b := range buckets {
		var err error
		if splitDirection {
			_, err = fmt.Fprintf(w, "level: %d direction: %s\n", b.Depth, b.Direction)
		} else {
			_, err = fmt.Fprintf(w, "level: %d\n", b.Depth)
		}
		if err != nil {
			return err
		}
		for _, e := range b.Entries {
			if _, err := fmt.Fprintf(w, "%d %s %f %f\n", e.Rank, e.Name, e.Abs(), e.Weight); err != nil {
				return err
			}
		}
	}
	return nil
}
