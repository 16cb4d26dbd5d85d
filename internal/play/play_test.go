package play

import "testing"

func TestValidate_AcceptsAndSorts(t *testing.T) {
	p, err := Validate([]int{61, 7, 45, 22, 14}, 9)
	if err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	want := [5]int{7, 14, 22, 45, 61}
	if p.White != want {
		t.Errorf("p.White = %v, want %v", p.White, want)
	}
	if p.Powerball != 9 {
		t.Errorf("p.Powerball = %d, want 9", p.Powerball)
	}
}

func TestValidate_WrongCount(t *testing.T) {
	_, err := Validate([]int{1, 2, 3}, 9)
	if err != ErrWrongWhiteCount {
		t.Errorf("Validate() error = %v, want %v", err, ErrWrongWhiteCount)
	}
}

func TestValidate_OutOfRange(t *testing.T) {
	_, err := Validate([]int{1, 2, 3, 4, 70}, 9)
	if err != ErrWhiteOutOfRange {
		t.Errorf("Validate() error = %v, want %v", err, ErrWhiteOutOfRange)
	}
}

func TestValidate_Duplicate(t *testing.T) {
	_, err := Validate([]int{1, 2, 3, 4, 4}, 9)
	if err != ErrWhiteNotDistinct {
		t.Errorf("Validate() error = %v, want %v", err, ErrWhiteNotDistinct)
	}
}

func TestValidate_PowerballRange(t *testing.T) {
	_, err := Validate([]int{1, 2, 3, 4, 5}, 33)
	if err != ErrPowerballRange {
		t.Errorf("Validate() error = %v, want %v", err, ErrPowerballRange)
	}
}

func TestValidate_PowerballMayEqualWhiteValue(t *testing.T) {
	p, err := Validate([]int{1, 2, 3, 4, 5}, 5)
	if err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if p.Powerball != 5 {
		t.Errorf("p.Powerball = %d, want 5", p.Powerball)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	p, err := Validate([]int{61, 7, 45, 22, 14}, 9)
	if err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}

	p2, err := Validate(p.White[:], p.Powerball)
	if err != nil {
		t.Fatalf("Validate(already validated) error = %v, want nil", err)
	}
	if p != p2 {
		t.Errorf("Validate(already validated) = %+v, want %+v", p2, p)
	}
}
