package certificateController

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeleter struct {
	deleted []string
	failOn  map[string]error
}

func (f *fakeDeleter) Delete(path string) error {
	if err, ok := f.failOn[path]; ok {
		return err
	}
	f.deleted = append(f.deleted, path)
	return nil
}

func TestDeleteObjectsAllSucceed(t *testing.T) {
	store := &fakeDeleter{}

	steps := deleteObjects(store, "delete photos", []string{"a.png", "b.png"})

	require.Len(t, steps, 2)
	for _, s := range steps {
		assert.Equal(t, StepOk, s.Status)
	}
	assert.Equal(t, []string{"a.png", "b.png"}, store.deleted)
}

func TestDeleteObjectsFailureIsSkippedNotFatal(t *testing.T) {
	store := &fakeDeleter{failOn: map[string]error{"b.png": errors.New("storage unavailable")}}

	steps := deleteObjects(store, "delete photos", []string{"a.png", "b.png", "c.png"})

	require.Len(t, steps, 3)
	assert.Equal(t, StepOk, steps[0].Status)
	assert.Equal(t, StepSkipped, steps[1].Status)
	assert.Equal(t, "storage unavailable", steps[1].Reason)
	assert.Equal(t, StepOk, steps[2].Status)
}

func TestDeleteObjectsEmptyPathSkipped(t *testing.T) {
	store := &fakeDeleter{}

	steps := deleteObjects(store, "delete certificate", []string{""})

	require.Len(t, steps, 1)
	assert.Equal(t, StepSkipped, steps[0].Status)
	assert.Equal(t, "no storage path recorded", steps[0].Reason)
	assert.Empty(t, store.deleted)
}

func TestSummarize(t *testing.T) {
	steps := []StepResult{
		okStep("delete photos"),
		skippedStep("delete certificate", "no storage path recorded"),
		okStep("delete photo rows"),
	}

	okCount, skippedCount, fatal := Summarize(steps)
	assert.Equal(t, 2, okCount)
	assert.Equal(t, 1, skippedCount)
	assert.Nil(t, fatal)
}

func TestSummarizeReportsFirstFatal(t *testing.T) {
	steps := []StepResult{
		okStep("delete photos"),
		fatalStep("delete photo rows", "connection refused"),
		fatalStep("delete certification row", "connection refused"),
	}

	_, _, fatal := Summarize(steps)
	require.NotNil(t, fatal)
	assert.Equal(t, "delete photo rows", fatal.Name)
}
