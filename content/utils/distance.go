package utils

// EdgeDistances 点到屏幕左、右、上、下四条边的距离
func EdgeDistances(x, y, width, height float64) [4]float64 {
	return [4]float64{x, width - x, y, height - y}
}
