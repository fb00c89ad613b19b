package rocketpy

import (
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	cfgLoaded = true
	config = _rpconfig{}
	cfgLoaded = false
	t.Setenv("ROCKETPY_CONFIG", "")
	if step := DefaultStep(); step != StepSize {
		t.Fatalf("expected the default step %s, got %s", StepSize, step)
	}
	if Verbose() {
		t.Fatal("verbose must default to off")
	}
}

func TestConfigOverride(t *testing.T) {
	cfgLoaded = true
	config = _rpconfig{verbose: true, step: 250 * time.Microsecond}
	if DefaultStep() != 250*time.Microsecond {
		t.Fatal("configured step not returned")
	}
	if !Verbose() {
		t.Fatal("configured verbosity not returned")
	}
	// Reset for the other tests.
	cfgLoaded = false
	config = _rpconfig{}
}
