package wizard

type Step string

const (
	StepDevice  Step = "device"
	StepIssue   Step = "issue"
	StepSlot    Step = "slot"
	StepDetails Step = "details"
)

var order = []Step{StepDevice, StepIssue, StepSlot, StepDetails}

// Index is the position of s in the fixed order, -1 if unknown.
func (s Step) Index() int {
	for i, o := range order {
		if o == s {
			return i
		}
	}
	return -1
}

func (s Step) next() (Step, bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(order) {
		return s, false
	}
	return order[i+1], true
}

func (s Step) prev() (Step, bool) {
	i := s.Index()
	if i <= 0 {
		return s, false
	}
	return order[i-1], true
}

// Steps lists the steps in order.
func Steps() []Step { return append([]Step(nil), order...) }
