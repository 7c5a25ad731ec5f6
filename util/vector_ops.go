package util

// sum the vector, the result is widened so that the total
// of many uint32 counts cannot wrap around
func VectorSum(data []uint32) uint64 {
	sum := uint64(0)
	for _, d := range data {
		sum += uint64(d)
	}
	return sum
}
