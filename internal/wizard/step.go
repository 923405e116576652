package wizard

// Step of the cache creation wizard.
type Step int

const (
	StepStart Step = iota
	StepBasic
	StepFeatures
	StepAdvanced
	StepReview
)

var stepNames = map[Step]string{
	StepStart:    "Start",
	StepBasic:    "Basic",
	StepFeatures: "Features",
	StepAdvanced: "Advanced",
	StepReview:   "Review",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Unknown"
}
