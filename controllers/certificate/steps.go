package certificateController

// Step statuses of the reset flow. Storage deletions may be skipped (a
// missing blob is not user-visible); database deletions are fatal.
const (
	StepOk      = "OK"
	StepSkipped = "SKIPPED"
	StepFatal   = "FATAL"
)

// StepResult records the outcome of one step of a multi-step destructive
// operation
type StepResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func okStep(name string) StepResult {
	return StepResult{Name: name, Status: StepOk}
}

func skippedStep(name, reason string) StepResult {
	return StepResult{Name: name, Status: StepSkipped, Reason: reason}
}

func fatalStep(name, reason string) StepResult {
	return StepResult{Name: name, Status: StepFatal, Reason: reason}
}

// objectDeleter is the slice of the storage client the reset flow needs
type objectDeleter interface {
	Delete(path string) error
}

// deleteObjects removes storage objects best-effort: each failure is recorded
// as a skipped step, never a fatal one.
func deleteObjects(store objectDeleter, stepName string, paths []string) []StepResult {
	results := make([]StepResult, 0, len(paths))
	for _, path := range paths {
		if path == "" {
			results = append(results, skippedStep(stepName, "no storage path recorded"))
			continue
		}
		if err := store.Delete(path); err != nil {
			results = append(results, skippedStep(stepName, err.Error()))
			continue
		}
		results = append(results, okStep(stepName))
	}
	return results
}

// Summarize aggregates step results: any fatal step aborts the operation,
// skipped steps are reported but do not.
func Summarize(steps []StepResult) (okCount, skippedCount int, fatal *StepResult) {
	for i := range steps {
		switch steps[i].Status {
		case StepOk:
			okCount++
		case StepSkipped:
			skippedCount++
		case StepFatal:
			if fatal == nil {
				fatal = &steps[i]
			}
		}
	}
	return okCount, skippedCount, fatal
}
