package scorecardtypes

// HoleResult classifies a hole score relative to par.
type HoleResult int

const (
	EagleOrBetter HoleResult = iota
	Birdie
	Par
	Bogey
	DoubleBogeyOrWorse
)

// ClassifyHole buckets strokes against par.
func ClassifyHole(strokes, par int) HoleResult {
	switch diff := strokes - par; {
	case diff <= -2:
		return EagleOrBetter
	case diff == -1:
		return Birdie
	case diff == 0:
		return Par
	case diff == 1:
		return Bogey
	default:
		return DoubleBogeyOrWorse
	}
}

func (r HoleResult) String() string {
	switch r {
	case EagleOrBetter:
		return "eagle_or_better"
	case Birdie:
		return "birdie"
	case Par:
		return "par"
	case Bogey:
		return "bogey"
	case DoubleBogeyOrWorse:
		return "double_bogey_or_worse"
	default:
		return "unknown"
	}
}
