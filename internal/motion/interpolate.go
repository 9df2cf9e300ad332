package motion

// Range maps an input interval onto an output interval.
// Without Clamp the mapping extends linearly past the input bounds.
type Range struct {
	In    [2]float64
	Out   [2]float64
	Clamp bool
}

// Interpolate maps x through r.
func Interpolate(x float64, r Range) float64 {
	lo, hi := r.In[0], r.In[1]
	if hi == lo {
		return r.Out[0]
	}
	if r.Clamp {
		minIn, maxIn := lo, hi
		if minIn > maxIn {
			minIn, maxIn = maxIn, minIn
		}
		if x < minIn {
			x = minIn
		}
		if x > maxIn {
			x = maxIn
		}
	}
	t := (x - lo) / (hi - lo)
	return r.Out[0] + t*(r.Out[1]-r.Out[0])
}
