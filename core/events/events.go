package events

// FragmentExtracted reports the outcome of extracting one document
// fragment. Err is nil on success.
type FragmentExtracted struct {
	Fragment int
	Scenes   int
	Err      error
}

// DayPacked reports a finished shooting day.
type DayPacked struct {
	Day    int
	Scenes int
	Hours  float64
}

// ScheduleComplete reports a finished scheduling run.
type ScheduleComplete struct {
	Days   int
	Scenes int
}
