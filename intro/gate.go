package intro

// ContentOpacity computes the gated content's visibility value. Content
// is fully visible once the run has completed or the sequence has
// advanced past fadeStep, tracks the step's progress linearly while
// fadeStep is running, and stays hidden before it. The engine exposes
// only the value; rendering belongs to the caller.
func ContentOpacity(st State, fadeStep int) float64 {
	if st.Completed || st.CurrentStep > fadeStep {
		return 1
	}
	if st.CurrentStep == fadeStep {
		return clamp01(st.StepProgress)
	}
	return 0
}
