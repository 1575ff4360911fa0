// Package contour turns a voxelized, region-labeled compact heightfield
// into a set of simplified 2.5D polygonal region outlines.
//
// It is one stage of a larger navigation-mesh build pipeline:
//
//  - Voxelize and filter the input geometry into a Heightfield.
//  - Build region ids over a CompactHeightfield.
//  - Build a ContourSet. (this package)
//  - Build a PolyMesh and PolyMeshDetail from the ContourSet.
//  - Build a Detour navigation mesh from the PolyMesh/PolyMeshDetail.
//
// BuildContours is the single entry point: it consumes a CompactHeightfield
// already carrying region ids and area codes, and produces a ContourSet.
package contour
