package code128go

// appendChecksum appends the modulo-103 check value and the stop code to a
// start-through-payload value sequence. The start code weighs 1 and every
// payload value weighs its position, so positions 0 and 1 both weigh 1.
func appendChecksum(values []int) []int {
	sum := values[0]
	for i, v := range values {
		sum += i * v
	}
	return append(values, sum%103, codeStop)
}
