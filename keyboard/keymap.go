package keyboard

// MinStep and MaxStep bound the step buttons
const (
	MinStep = -4
	MaxStep = 4
)

// StepKeys is the home row, left to right, mapped to MinStep..MaxStep
var StepKeys = []string{"a", "s", "d", "f", "g", "h", "j", "k", "l"}

var keySteps = func() map[string]int {
	m := make(map[string]int, len(StepKeys))
	for i, k := range StepKeys {
		m[k] = MinStep + i
	}
	return m
}()

// StepForKey returns the step for a key press; ok is false for unmapped keys
func StepForKey(key string) (step int, ok bool) {
	step, ok = keySteps[key]
	return step, ok
}

// KeyForStep is the inverse of StepForKey
func KeyForStep(step int) (string, bool) {
	if step < MinStep || step > MaxStep {
		return "", false
	}
	return StepKeys[step-MinStep], true
}

// Steps returns MinStep..MaxStep in order
func Steps() []int {
	out := make([]int, 0, MaxStep-MinStep+1)
	for s := MinStep; s <= MaxStep; s++ {
		out = append(out, s)
	}
	return out
}
