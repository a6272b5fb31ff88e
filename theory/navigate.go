package theory

// ResolveStep walks |step| iterations from root through pattern.
//
// Iteration i moves by pattern[i%len(pattern)] semitones, forward for a
// positive step and backward for a negative one. The pattern index counts
// iterations, not scale degrees, so it starts at pattern[0] in both
// directions. Going down from the root of Major gives A#, not B, and -1
// after +2 subtracts pattern[0] rather than undoing pattern[1]. Callers
// must pass a validated pattern.
func ResolveStep(root PitchClass, pattern IntervalPattern, step int) PitchClass {
	dir := 1
	n := uint(step)
	if step < 0 {
		dir = -1
		n = -n // unsigned, so math.MinInt negates cleanly
	}

	// Every len(pattern) iterations move by the pattern's total, so only
	// the remainder needs walking.
	plen := uint(len(pattern))
	cycles, rest := n/plen, n%plen

	total := 0
	for _, interval := range pattern {
		total += interval
	}
	offset := int(cycles%NumPitchClasses) * mod12(total)
	for i := uint(0); i < rest; i++ {
		offset += pattern[i]
	}

	idx := mod12(int(root) + dir*mod12(offset))
	return PitchClass(idx)
}
