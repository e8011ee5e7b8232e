package console

import "github.com/iw2rmb/undotext/internal/grapheme"

type clusterClass uint8

const (
	classSpace clusterClass = iota
	classPunct
	classWord
)

func classify(cluster string) clusterClass {
	switch {
	case grapheme.IsSpace(cluster):
		return classSpace
	case grapheme.IsPunct(cluster):
		return classPunct
	default:
		return classWord
	}
}

// wordLeft returns the start of the word before cursor: trailing spaces are
// skipped, then one run of same-class clusters.
func wordLeft(line string, cursor int) int {
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)
	i := clusterIndex(bounds, cursor)

	for i > 0 && classify(clusters[i-1]) == classSpace {
		i--
	}
	if i == 0 {
		return 0
	}
	cls := classify(clusters[i-1])
	for i > 0 && classify(clusters[i-1]) == cls {
		i--
	}
	return bounds[i]
}

// wordRight returns the end of the word after cursor: leading spaces are
// skipped, then one run of same-class clusters.
func wordRight(line string, cursor int) int {
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)
	i := clusterIndex(bounds, cursor)

	for i < len(clusters) && classify(clusters[i]) == classSpace {
		i++
	}
	if i == len(clusters) {
		return bounds[i]
	}
	cls := classify(clusters[i])
	for i < len(clusters) && classify(clusters[i]) == cls {
		i++
	}
	return bounds[i]
}

// clusterIndex maps a rune offset to the index of the last boundary at or
// before it.
func clusterIndex(bounds []int, off int) int {
	idx := 0
	for i, b := range bounds {
		if b > off {
			break
		}
		idx = i
	}
	return idx
}
