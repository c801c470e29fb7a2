package candidates

import "math"

// gaussianKernel1D returns weights for a discrete 1-D Gaussian of the given
// sigma (in pixel units — spec.md's Open Question 1 notes the source scales
// sigma in pixel units regardless of physical pixel size; this core
// preserves that choice), truncated at 3 sigma.
func gaussianKernel1D(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		weights[i+radius] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// reflectIndex mirrors i into [0, n) using scipy's default "reflect" padding
// mode (d c b a | a b c d | d c b a), so edge pixels are never invented.
func reflectIndex(i, n int) int {
	if n <= 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

// gaussianSmooth applies a separable Gaussian blur (sigma=1 pixel,
// reflect-at-edge) to a row-major float32 raster, ignoring NaN source cells
// by excluding them from the weighted sum and renormalizing (consistent
// with this core's NaN-as-nodata convention elsewhere).
func gaussianSmooth(values []float32, width, height int, sigma float64) []float32 {
	kernel := gaussianKernel1D(sigma)
	radius := len(kernel) / 2

	horiz := make([]float64, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sum, wsum := 0.0, 0.0
			for k := -radius; k <= radius; k++ {
				c := reflectIndex(col+k, width)
				v := values[row*width+c]
				if math.IsNaN(float64(v)) {
					continue
				}
				w := kernel[k+radius]
				sum += w * float64(v)
				wsum += w
			}
			if wsum == 0 {
				horiz[row*width+col] = math.NaN()
			} else {
				horiz[row*width+col] = sum / wsum
			}
		}
	}

	out := make([]float32, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sum, wsum := 0.0, 0.0
			for k := -radius; k <= radius; k++ {
				r := reflectIndex(row+k, height)
				v := horiz[r*width+col]
				if math.IsNaN(v) {
					continue
				}
				w := kernel[k+radius]
				sum += w * v
				wsum += w
			}
			if wsum == 0 {
				out[row*width+col] = float32(math.NaN())
			} else {
				out[row*width+col] = float32(sum / wsum)
			}
		}
	}
	return out
}
