package sketches

import (
	"github.com/go-sif/hiero"
)

// Histogram counts the rows falling into each bucket
func Histogram(b hiero.Buckets) *GroupBySketch[*CountResult, *EmptyWorkspace] {
	return GroupBy[*CountResult, *EmptyWorkspace](b, Count())
}

// Histogram2D counts the rows falling into each pair of buckets. The outer level of the result is indexed by b1.
func Histogram2D(b0 hiero.Buckets, b1 hiero.Buckets) *GroupBySketch[*Groups[*CountResult], *GroupByWorkspace[*EmptyWorkspace]] {
	return GroupBy[*Groups[*CountResult], *GroupByWorkspace[*EmptyWorkspace]](b1, Histogram(b0))
}

// Histogram3D counts the rows falling into each triple of buckets. The outermost level of the result is indexed by b2.
func Histogram3D(b0 hiero.Buckets, b1 hiero.Buckets, b2 hiero.Buckets) *GroupBySketch[*Groups[*Groups[*CountResult]], *GroupByWorkspace[*GroupByWorkspace[*EmptyWorkspace]]] {
	return GroupBy[*Groups[*Groups[*CountResult]], *GroupByWorkspace[*GroupByWorkspace[*EmptyWorkspace]]](b2, Histogram2D(b0, b1))
}

// Histogram4D counts the rows falling into each quadruple of buckets. The outermost level of the result is indexed by b3.
func Histogram4D(b0 hiero.Buckets, b1 hiero.Buckets, b2 hiero.Buckets, b3 hiero.Buckets) *GroupBySketch[*Groups[*Groups[*Groups[*CountResult]]], *GroupByWorkspace[*GroupByWorkspace[*GroupByWorkspace[*EmptyWorkspace]]]] {
	return GroupBy[*Groups[*Groups[*Groups[*CountResult]]], *GroupByWorkspace[*GroupByWorkspace[*GroupByWorkspace[*EmptyWorkspace]]]](b3, Histogram3D(b0, b1, b2))
}
