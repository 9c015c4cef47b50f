package trajectory

// Summary describes a trajectory as seen through its samples. All values
// come from the sample grid, so they are accurate to one time step.
type Summary struct {
	Samples    int
	Apex       Point   // highest sample; earliest on ties
	Range      float64 // greatest X among samples with Y >= 0
	FlightTime float64 // last sample time before Y first drops below zero
}

// Summary walks the samples once.
func (tr *Trajectory) Summary() Summary {
	s := Summary{Samples: len(tr.t)}
	if len(tr.t) == 0 {
		return s
	}

	s.Apex = tr.At(0)
	s.Range = tr.x[0]
	landed := false
	for i, y := range tr.y {
		if y > s.Apex.Y {
			s.Apex = tr.At(i)
		}
		if y < 0 {
			landed = true
			continue
		}
		if tr.x[i] > s.Range {
			s.Range = tr.x[i]
		}
		if !landed {
			s.FlightTime = tr.t[i]
		}
	}
	return s
}
