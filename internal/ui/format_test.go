package ui

import (
	"math"
	"testing"
)

func TestFormatSharpe(t *testing.T) {
	if got := FormatSharpe(0.9712); got != "0.9712" {
		t.Errorf("FormatSharpe(0.9712) = %q", got)
	}
	if got := FormatSharpe(-2.5); got != "-2.5000" {
		t.Errorf("FormatSharpe(-2.5) = %q", got)
	}
	// Degenerate rounds propagate non-finite values; render them readably.
	if got := FormatSharpe(math.NaN()); got != "NaN" {
		t.Errorf("FormatSharpe(NaN) = %q", got)
	}
	if got := FormatSharpe(math.Inf(1)); got != "+Inf" {
		t.Errorf("FormatSharpe(+Inf) = %q", got)
	}
	if got := FormatSharpe(math.Inf(-1)); got != "-Inf" {
		t.Errorf("FormatSharpe(-Inf) = %q", got)
	}
}

func TestFormatReturn(t *testing.T) {
	if got := FormatReturn(0.00123456); got != "0.001235" {
		t.Errorf("FormatReturn = %q", got)
	}
	if got := FormatReturn(math.NaN()); got != "NaN" {
		t.Errorf("FormatReturn(NaN) = %q", got)
	}
}
