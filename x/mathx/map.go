package mathx

// MapU16 maps x in [inMin,inMax] to [outMin,outMax] with 32-bit intermediates,
// rounding to nearest. Inputs outside the range clamp to its ends.
func MapU16(x, inMin, inMax, outMin, outMax uint16) uint16 {
	if inMax <= inMin {
		return outMin
	}
	x = Clamp(x, inMin, inMax)
	num := uint32(x-inMin) * uint32(outMax-outMin)
	den := uint32(inMax - inMin)
	return uint16(uint32(outMin) + (num+den/2)/den)
}
