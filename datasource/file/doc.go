// Package file provides Datasets of FileLoaders over files matching a glob.
// Each file becomes a single leaf, so it is favourable if individual
// files represent roughly equal-sized divisions of data.
package file
