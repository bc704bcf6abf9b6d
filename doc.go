// Package hiero contains the core components of Hiero, a framework for computing sketches over
// partitioned, columnar tables. This root package defines the types which are employed during
// the regular use of the framework, as well as in its extension (new sketches, new loaders),
// and is an excellent overview of Hiero's key concepts:
//
// Tables hold typed, immutable Columns plus a Membership describing which rows are present.
// Datasets (package dataset) arrange values, typically Tables, into a tree of partitions.
// Maps transform every partition independently, and Sketches compute a partial result per
// partition which is then combined, following the shape of the tree, into a single result.
package hiero
