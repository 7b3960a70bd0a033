package wireframe

// GenerateIndices writes the wireframe connectivity for an nxPts x nyPts
// grid into dst as uint32 vertex-id pairs, one pair per line segment.
//
// For each grid point with row-major id = y*nxPts + x, two segments are
// emitted: (id, id+nxPts) to the point directly above, unless the point
// is in the last row, and (id, id+1) to the point directly to the right,
// unless the point is in the last column. Rows are walked in ascending
// order, columns inside rows in ascending order, and the vertical pair
// precedes the horizontal one at each point. Consumers may rely on this
// ordering for stable line-list semantics.
//
// The number of entries written is exactly IndexCount(nxPts, nyPts).
// As with GenerateMesh, a dimension beyond its cap writes nothing, and
// dst must hold at least IndexCount entries.
//
// The output depends only on the grid dimensions, never on vertex
// positions, so it can be generated before (or without) the mesh.
func GenerateIndices(dst []uint32, nxPts, nyPts uint32) {
	if nxPts > MaxWidth || nyPts > MaxHeight {
		Logger().Debug("wireframe: index generation skipped, grid exceeds caps",
			"cols", nxPts, "rows", nyPts, "maxCols", MaxWidth, "maxRows", MaxHeight)
		return
	}

	idx := 0
	for yIdx := uint32(0); yIdx < nyPts; yIdx++ {
		// Row-major: the id of the first point in this row.
		shift := yIdx * nxPts

		for xIdx := uint32(0); xIdx < nxPts; xIdx++ {
			id := shift + xIdx

			// Segment to the point directly above, except in the last row.
			if yIdx != nyPts-1 {
				dst[idx] = id
				dst[idx+1] = id + nxPts
				idx += 2
			}

			// Segment to the point to the right, except in the last column.
			if xIdx != nxPts-1 {
				dst[idx] = id
				dst[idx+1] = id + 1
				idx += 2
			}
		}
	}
}
