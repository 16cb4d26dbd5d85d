package fallback

import "testing"

func TestExtract_CleanSpacedLineParses(t *testing.T) {
	plays := Extract("07 14 22 45 61 PB 09")

	if len(plays) != 1 {
		t.Fatalf("Extract() returned %d plays, want 1", len(plays))
	}
	if want := [5]int{7, 14, 22, 45, 61}; plays[0].White != want {
		t.Errorf("plays[0].White = %v, want %v", plays[0].White, want)
	}
	if plays[0].Powerball != 9 {
		t.Errorf("plays[0].Powerball = %d, want 9", plays[0].Powerball)
	}
}

func TestExtract_NoExplicitPBPivotsOnLastNumber(t *testing.T) {
	// No "PB" token survives repair; the last valid number in range is
	// taken as the Powerball per §4.7 step 3's fallback rule.
	plays := Extract("03 18 27 44 60 12")

	if len(plays) != 1 {
		t.Fatalf("Extract() returned %d plays, want 1", len(plays))
	}
	if want := [5]int{3, 18, 27, 44, 60}; plays[0].White != want {
		t.Errorf("plays[0].White = %v, want %v", plays[0].White, want)
	}
	if plays[0].Powerball != 12 {
		t.Errorf("plays[0].Powerball = %d, want 12", plays[0].Powerball)
	}
}

func TestExtract_BareBMarkerIsRepairedToPB(t *testing.T) {
	// "B09" misreads the Powerball marker glyph as a bare "B" token; the
	// standalone-B-before-digits rule rewrites it to "PB 09".
	plays := Extract("07 14 22 45 61 B09")

	if len(plays) != 1 {
		t.Fatalf("Extract() returned %d plays, want 1", len(plays))
	}
	if want := [5]int{7, 14, 22, 45, 61}; plays[0].White != want {
		t.Errorf("plays[0].White = %v, want %v", plays[0].White, want)
	}
	if plays[0].Powerball != 9 {
		t.Errorf("plays[0].Powerball = %d, want 9", plays[0].Powerball)
	}
}

func TestExtract_GluedDigitRunIsSplitAndRepairedWithoutCorruption(t *testing.T) {
	// "0714224561PB09" glues all five white numbers together; it also
	// contains an incidental "71" spanning the 07/14 token boundary, which
	// must NOT be rewritten to "11" by the 71->11 repair rule.
	plays := Extract("0714224561PB09")

	if len(plays) != 1 {
		t.Fatalf("Extract() returned %d plays, want 1", len(plays))
	}
	if want := [5]int{7, 14, 22, 45, 61}; plays[0].White != want {
		t.Errorf("plays[0].White = %v, want %v", plays[0].White, want)
	}
	if plays[0].Powerball != 9 {
		t.Errorf("plays[0].Powerball = %d, want 9", plays[0].Powerball)
	}
}

func TestExtract_InvalidPowerballLineIsDropped(t *testing.T) {
	if plays := Extract("07 14 22 45 61 PB 33"); len(plays) != 0 {
		t.Errorf("Extract() = %+v, want no plays", plays)
	}
}

func TestExtract_ShortLineIsIgnored(t *testing.T) {
	if plays := Extract("07 14"); len(plays) != 0 {
		t.Errorf("Extract() = %+v, want no plays", plays)
	}
}

func TestExtract_EmptyTextYieldsNoPlaysWithoutPanicking(t *testing.T) {
	plays := Extract("")
	if len(plays) != 0 {
		t.Errorf("Extract(\"\") = %+v, want no plays", plays)
	}
}

func TestExtract_MultipleLinesEachParseIndependently(t *testing.T) {
	raw := "07 14 22 45 61 PB 09\n03 18 27 44 60 PB 12"
	plays := Extract(raw)

	if len(plays) != 2 {
		t.Fatalf("Extract() returned %d plays, want 2", len(plays))
	}
	if want := [5]int{7, 14, 22, 45, 61}; plays[0].White != want {
		t.Errorf("plays[0].White = %v, want %v", plays[0].White, want)
	}
	if want := [5]int{3, 18, 27, 44, 60}; plays[1].White != want {
		t.Errorf("plays[1].White = %v, want %v", plays[1].White, want)
	}
}

func TestSplitDigitRun_EvenAndOddLengths(t *testing.T) {
	if got := splitDigitRun("0714224561"); got != "07 14 22 45 61" {
		t.Errorf("splitDigitRun(%q) = %q, want %q", "0714224561", got, "07 14 22 45 61")
	}
	if got := splitDigitRun("071422456"); got != "07 14 22 45 6" {
		t.Errorf("splitDigitRun(%q) = %q, want %q", "071422456", got, "07 14 22 45 6")
	}
}
