package wire

// Align64 rounds numBytes up to the next multiple of 8 bytes. Directory
// records must start on a 64-bit boundary, even on 32-bit kernels.
//
// Adding 7 pushes any unaligned value into the range of the next multiple
// while leaving aligned values in their own; masking off the low 3 bits then
// rounds down to that multiple.
func Align64(numBytes uint64) uint64 {
	return (numBytes + 7) &^ 7
}
