package voxel

import "github.com/nickglenn/voxeltiler/internal/geometry"

// Voxel is the value stored per occupied cell: a running integer color
// SUM plus the saturating weight backing it. ColorSum is carried in CP, a
// pool type strictly wider than both C and W, so that accumulating many
// weighted observations cannot overflow a channel before the weight
// itself saturates. The displayed color is only computed on read, via
// Color(), as a truncating integer division of the sum by the weight —
// the running value itself is never rounded or averaged mid-merge, which
// is what keeps repeated merges order-independent outside the saturating
// regime.
type Voxel[C geometry.Int, W geometry.UInt, CP geometry.Int] struct {
	ColorSum Color[CP]
	Weight   W
}

// New returns a voxel representing a single observation of color c. First
// insert always starts at weight 1; a variant that started a fresh cell at
// weight 0 would let that cell be silently out-voted by its own first
// sample, which is the bug corrected here.
func New[C geometry.Int, W geometry.UInt, CP geometry.Int](c Color[C]) Voxel[C, W, CP] {
	var sum Color[CP]
	for i := 0; i < 3; i++ {
		sum[i] = CP(c[i])
	}
	return Voxel[C, W, CP]{ColorSum: sum, Weight: 1}
}

// Add folds a new color observation of the given weight into v, returning
// the updated voxel. If the voxel's weight has already saturated at
// weightMax, the call is a no-op. Otherwise the observation's color,
// scaled by the weight actually absorbed, is added into the running
// ColorSum — never averaged — so Color() stays exact regardless of merge
// order.
func (v Voxel[C, W, CP]) Add(c Color[C], addedWeight W, weightMax W) Voxel[C, W, CP] {
	if v.Weight == weightMax {
		return v
	}

	fit := weightMax - v.Weight
	usedWeight := addedWeight
	newWeight := v.Weight + addedWeight
	if fit < addedWeight {
		// Overflow: only "fit" worth of the new observation can be
		// absorbed before the weight saturates.
		usedWeight = fit
		newWeight = weightMax
	}

	var sum Color[CP]
	for i := 0; i < 3; i++ {
		sum[i] = v.ColorSum[i] + CP(c[i])*CP(usedWeight)
	}

	return Voxel[C, W, CP]{ColorSum: sum, Weight: newWeight}
}

// Color computes the displayed color as color_sum / weight, truncating.
// A voxel with zero weight (never observed) reads as the zero color.
func (v Voxel[C, W, CP]) Color() Color[C] {
	var out Color[C]
	if v.Weight == 0 {
		return out
	}
	for i := 0; i < 3; i++ {
		out[i] = C(v.ColorSum[i] / CP(v.Weight))
	}
	return out
}
