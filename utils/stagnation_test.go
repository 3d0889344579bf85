package utils

import "testing"

func TestStagnationDetectorStaticBoard(t *testing.T) {
	var d StagnationDetector

	// Needs at least three observations before it reports anything
	d.Observe("a")
	d.Observe("a")
	if d.Stagnant("a") {
		t.Fatal("stagnant after only two observations")
	}

	d.Observe("a")
	if !d.Stagnant("a") {
		t.Fatal("static board not detected")
	}
}

func TestStagnationDetectorPeriodTwoCycle(t *testing.T) {
	var d StagnationDetector

	for _, fp := range []string{"a", "b", "a", "b"} {
		d.Observe(fp)
	}
	if !d.Stagnant("a") {
		t.Fatal("period-2 cycle not detected")
	}
}

func TestStagnationDetectorActiveBoard(t *testing.T) {
	var d StagnationDetector

	for _, fp := range []string{"a", "b", "c", "d"} {
		d.Observe(fp)
	}
	if d.Stagnant("e") {
		t.Fatal("fresh state reported as stagnant")
	}
}

func TestStagnationDetectorReset(t *testing.T) {
	var d StagnationDetector

	for _, fp := range []string{"a", "a", "a"} {
		d.Observe(fp)
	}
	d.Reset()
	if d.Stagnant("a") {
		t.Fatal("stagnant after reset")
	}
}

func TestStagnationDetectorBoundedHistory(t *testing.T) {
	var d StagnationDetector

	for _, fp := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		d.Observe(fp)
	}
	// "a" has rolled out of the window and only the last three count
	if d.Stagnant("d") {
		t.Fatal("fingerprint outside the last three generations matched")
	}
	if !d.Stagnant("g") {
		t.Fatal("most recent fingerprint not matched")
	}
}
