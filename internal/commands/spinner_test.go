package commands

import (
	"testing"
	"time"
)

// TestSpinnerStopWithSuccess tests the normal lifecycle
func TestSpinnerStopWithSuccess(t *testing.T) {
	s := newSpinner("Working")
	s.start()
	time.Sleep(120 * time.Millisecond)
	s.stopWithSuccess("Done")
}

// TestSpinnerStopWithError tests the error path teardown
func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner("Working")
	s.start()
	s.stopWithError()
}

// TestSpinnerDoubleStop tests that repeated stops do not panic
func TestSpinnerDoubleStop(t *testing.T) {
	s := newSpinner("Working")
	s.start()
	s.stopWithError()
	s.stopOnce()
	s.stopOnce()
}
