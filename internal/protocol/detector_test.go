package protocol

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestDetectNothingWithoutPhotonsOrDarkCounts(t *testing.T) {
	det := NewDetector(0.10, 0.01, 0, rand.New(rand.NewSource(1)))
	for i := 0; i < 100000; i++ {
		clicked, dark := det.Detect(0)
		if clicked || dark {
			t.Fatalf("trial %d: Detect(0) with zero dark-count rate clicked", i)
		}
	}
}

func TestDetectPerfectEfficiencyAlwaysClicks(t *testing.T) {
	det := NewDetector(1.0, 0, 0, rand.New(rand.NewSource(2)))
	for n := 1; n <= 10; n++ {
		clicked, dark := det.Detect(n)
		if !clicked {
			t.Fatalf("Detect(%d) at efficiency 1 did not click", n)
		}
		if dark {
			t.Fatalf("Detect(%d) real detection tagged as dark count", n)
		}
	}
}

func TestDetectDarkCountsTaggedOnEmptyPulses(t *testing.T) {
	det := NewDetector(0.10, 0, 1.0, rand.New(rand.NewSource(3)))
	clicked, dark := det.Detect(0)
	if !clicked {
		t.Fatalf("certain dark count did not click")
	}
	if !dark {
		t.Fatalf("click with zero surviving photons not tagged as dark count")
	}
}

func TestDetectBlindDetectorStillClicksOnNoise(t *testing.T) {
	det := NewDetector(0, 0, 1.0, rand.New(rand.NewSource(4)))
	for n := 0; n <= 5; n++ {
		clicked, _ := det.Detect(n)
		if !clicked {
			t.Fatalf("Detect(%d) with certain dark counts did not click", n)
		}
	}
}

// The dark tag calibrates the noise floor, so it is reserved for clicks on
// empty pulses: a click with surviving photons present is never tagged, even
// when the efficiency draw failed.
func TestDetectNeverTagsDarkWithSurvivors(t *testing.T) {
	det := NewDetector(0, 0, 1.0, rand.New(rand.NewSource(5)))
	for i := 0; i < 1000; i++ {
		clicked, dark := det.Detect(5)
		if !clicked {
			t.Fatalf("trial %d: certain dark count did not click", i)
		}
		if dark {
			t.Fatalf("trial %d: click with 5 surviving photons tagged as dark count", i)
		}
	}
}
