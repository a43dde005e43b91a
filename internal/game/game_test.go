package game

import (
	"testing"

	"sharpeguess/internal/stats"
)

func newGuessingApp() *App {
	return NewSeeded(true, 42, 43)
}

// fixStats pins the round statistics to known values so the scoring
// arithmetic can be checked exactly.
func fixStats(a *App) {
	a.Stats = stats.Stats{
		ActualSharpe: 1.0,
		SampleSharpe: 0.97,
		SharpeError:  0.09,
	}
}

func typeGuess(a *App, s string) {
	for _, c := range s {
		a.AddChar(c)
	}
}

func TestDeterministicReplay(t *testing.T) {
	a := NewSeeded(true, 7, 8)
	b := NewSeeded(true, 7, 8)

	for round := 0; round < 10; round++ {
		if a.Stats != b.Stats {
			t.Fatalf("round %d: stats diverged: %+v vs %+v", round, a.Stats, b.Stats)
		}
		if len(a.Returns) != stats.Days || len(b.Returns) != stats.Days {
			t.Fatalf("round %d: series lengths %d, %d", round, len(a.Returns), len(b.Returns))
		}
		a.Recalc()
		b.Recalc()
	}
}

func TestAddCharFilter(t *testing.T) {
	a := newGuessingApp()

	typeGuess(a, "1x.y-z2")
	if a.Guess.CurrentGuess != "1.-2" {
		t.Errorf("buffer = %q, want %q", a.Guess.CurrentGuess, "1.-2")
	}

	// Transiently invalid text is allowed; only parse time rejects it.
	a.Guess.CurrentGuess = ""
	typeGuess(a, "--1.2.3")
	if a.Guess.CurrentGuess != "--1.2.3" {
		t.Errorf("buffer = %q, want %q", a.Guess.CurrentGuess, "--1.2.3")
	}
}

func TestAddCharIgnoredWhileShowingResult(t *testing.T) {
	a := newGuessingApp()
	typeGuess(a, "1")
	a.SubmitGuess()
	if a.Guess.State != ShowingResult {
		t.Fatalf("state = %v, want ShowingResult", a.Guess.State)
	}

	a.AddChar('2')
	a.RemoveChar()
	a.ToggleTarget()
	if a.Guess.CurrentGuess != "1" {
		t.Errorf("buffer changed while showing result: %q", a.Guess.CurrentGuess)
	}
	if a.Guess.Target != TargetSample {
		t.Errorf("target toggled while showing result")
	}
}

func TestRemoveChar(t *testing.T) {
	a := newGuessingApp()
	typeGuess(a, "1.5")
	a.RemoveChar()
	if a.Guess.CurrentGuess != "1." {
		t.Errorf("buffer = %q, want %q", a.Guess.CurrentGuess, "1.")
	}

	a.RemoveChar()
	a.RemoveChar()
	a.RemoveChar() // empty buffer: no-op
	if a.Guess.CurrentGuess != "" {
		t.Errorf("buffer = %q, want empty", a.Guess.CurrentGuess)
	}
}

func TestToggleTargetTwice(t *testing.T) {
	a := newGuessingApp()
	before := a.Stats

	a.ToggleTarget()
	if a.Guess.Target != TargetActual {
		t.Fatalf("target = %v, want TargetActual", a.Guess.Target)
	}
	a.ToggleTarget()
	if a.Guess.Target != TargetSample {
		t.Fatalf("target = %v, want TargetSample", a.Guess.Target)
	}
	if a.Stats != before {
		t.Errorf("toggling target altered statistics")
	}
}

func TestSubmitParseFailure(t *testing.T) {
	a := newGuessingApp()

	for _, buffer := range []string{"", "--", "1.2.3", "-.-"} {
		a.Guess.CurrentGuess = buffer
		a.SubmitGuess()
		if a.Guess.State != WaitingForGuess {
			t.Errorf("buffer %q: state = %v, want WaitingForGuess", buffer, a.Guess.State)
		}
		if a.Guess.LastGuess != nil {
			t.Errorf("buffer %q: last guess = %v, want nil", buffer, *a.Guess.LastGuess)
		}
		if a.Guess.CurrentGuess != buffer {
			t.Errorf("buffer %q changed to %q on failed parse", buffer, a.Guess.CurrentGuess)
		}
	}
}

func TestSubmitIncorrectGuess(t *testing.T) {
	a := newGuessingApp()
	fixStats(a)

	// |0.95 - 0.97| = 0.02 > 0.12 * 0.09 = 0.0108.
	typeGuess(a, "0.95")
	a.SubmitGuess()

	if a.Guess.LastGuess == nil || *a.Guess.LastGuess != 0.95 {
		t.Fatalf("last guess = %v, want 0.95", a.Guess.LastGuess)
	}
	if a.Guess.WasCorrect {
		t.Errorf("guess 0.95 against 0.97 marked correct")
	}
	if a.Guess.Score != 0 {
		t.Errorf("score = %d, want 0", a.Guess.Score)
	}
	if a.Guess.State != ShowingResult {
		t.Errorf("state = %v, want ShowingResult", a.Guess.State)
	}
}

func TestSubmitCorrectGuess(t *testing.T) {
	a := newGuessingApp()
	fixStats(a)

	// |0.975 - 0.97| = 0.005 <= 0.0108.
	typeGuess(a, "0.975")
	a.SubmitGuess()

	if !a.Guess.WasCorrect {
		t.Errorf("guess 0.975 against 0.97 marked incorrect")
	}
	if a.Guess.Score != 1 {
		t.Errorf("score = %d, want 1", a.Guess.Score)
	}
	if a.Guess.State != ShowingResult {
		t.Errorf("state = %v, want ShowingResult", a.Guess.State)
	}
}

func TestSubmitAgainstActualTarget(t *testing.T) {
	a := newGuessingApp()
	fixStats(a)
	a.ToggleTarget()

	// Scored against ActualSharpe = 1.0 now: |0.995 - 1.0| = 0.005 <= 0.0108.
	typeGuess(a, "0.995")
	a.SubmitGuess()

	if !a.Guess.WasCorrect {
		t.Errorf("guess 0.995 against actual 1.0 marked incorrect")
	}
}

func TestScoreSurvivesRecalc(t *testing.T) {
	a := newGuessingApp()
	fixStats(a)
	typeGuess(a, "0.975")
	a.SubmitGuess()
	if a.Guess.Score != 1 {
		t.Fatalf("score = %d, want 1", a.Guess.Score)
	}

	a.Recalc()
	if a.Guess.Score != 1 {
		t.Errorf("recalc reset score to %d", a.Guess.Score)
	}
	if a.Guess.State != WaitingForGuess {
		t.Errorf("state = %v after recalc, want WaitingForGuess", a.Guess.State)
	}
	if a.Guess.CurrentGuess != "" || a.Guess.LastGuess != nil || a.Guess.WasCorrect {
		t.Errorf("transient round fields not reset: %+v", a.Guess)
	}
}

func TestNextRoundNoopWhileWaiting(t *testing.T) {
	a := newGuessingApp()
	typeGuess(a, "1.5")
	before := a.Stats

	a.NextRound()

	if a.Stats != before {
		t.Errorf("next round replaced statistics while waiting for a guess")
	}
	if a.Guess.CurrentGuess != "1.5" {
		t.Errorf("buffer = %q, want %q", a.Guess.CurrentGuess, "1.5")
	}
}

func TestNextRoundAfterResult(t *testing.T) {
	a := newGuessingApp()
	typeGuess(a, "1")
	a.SubmitGuess()
	before := a.Stats

	a.NextRound()

	if a.Stats == before {
		t.Errorf("next round did not draw fresh statistics")
	}
	if a.Guess.State != WaitingForGuess {
		t.Errorf("state = %v, want WaitingForGuess", a.Guess.State)
	}
}

func TestDisplayModeIgnoresGuessOperations(t *testing.T) {
	a := NewSeeded(false, 1, 2)
	if a.Guess != nil {
		t.Fatalf("display mode has guess state")
	}

	// None of these may panic or mutate anything in display mode.
	a.AddChar('1')
	a.RemoveChar()
	a.ToggleTarget()
	a.SubmitGuess()
	a.NextRound()

	before := a.Stats
	a.Recalc()
	if a.Stats == before {
		t.Errorf("recalc did not draw fresh statistics in display mode")
	}
}

func TestHandleDispatch(t *testing.T) {
	a := newGuessingApp()

	a.Handle(Event{Kind: EventCharacterInput, Char: '3'})
	a.Handle(Event{Kind: EventCharacterInput, Char: '.'})
	a.Handle(Event{Kind: EventCharacterInput, Char: '5'})
	a.Handle(Event{Kind: EventBackspace})
	if a.Guess.CurrentGuess != "3." {
		t.Errorf("buffer = %q, want %q", a.Guess.CurrentGuess, "3.")
	}

	a.Handle(Event{Kind: EventToggleTarget})
	if a.Guess.Target != TargetActual {
		t.Errorf("target = %v, want TargetActual", a.Guess.Target)
	}

	before := a.Stats
	a.Handle(Event{Kind: EventHeartbeat})
	if a.Stats != before || a.Guess.CurrentGuess != "3." {
		t.Errorf("heartbeat mutated state")
	}

	a.Handle(Event{Kind: EventCharacterInput, Char: '5'})
	a.Handle(Event{Kind: EventSubmit})
	if a.Guess.State != ShowingResult {
		t.Errorf("state = %v after submit, want ShowingResult", a.Guess.State)
	}

	a.Handle(Event{Kind: EventNextRound})
	if a.Guess.State != WaitingForGuess {
		t.Errorf("state = %v after next round, want WaitingForGuess", a.Guess.State)
	}

	a.Handle(Event{Kind: EventRecalculate})
	if a.Guess.State != WaitingForGuess {
		t.Errorf("state = %v after recalculate, want WaitingForGuess", a.Guess.State)
	}

	a.Handle(Event{Kind: EventQuit})
	if a.Running {
		t.Errorf("still running after quit")
	}
}

func TestScoreMonotonicAcrossRounds(t *testing.T) {
	a := newGuessingApp()
	last := 0

	for round := 0; round < 20; round++ {
		fixStats(a)
		if round%2 == 0 {
			typeGuess(a, "0.975") // correct
		} else {
			typeGuess(a, "2.5") // incorrect
		}
		a.SubmitGuess()
		if a.Guess.Score < last {
			t.Fatalf("round %d: score decreased from %d to %d", round, last, a.Guess.Score)
		}
		last = a.Guess.Score
		a.NextRound()
	}
	if last != 10 {
		t.Errorf("final score = %d, want 10", last)
	}
}
