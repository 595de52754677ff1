package validate

import "testing"

func TestPhone(t *testing.T) {
	valid := []string{"555-201-9988", "+1 (301) 555 0142", "3015550142"}
	for _, s := range valid {
		if _, ok := Phone(s); !ok {
			t.Errorf("want valid: %q", s)
		}
	}
	invalid := []string{"", "abc", "12345", "555-0142; DROP TABLE"}
	for _, s := range invalid {
		if _, ok := Phone(s); ok {
			t.Errorf("want invalid: %q", s)
		}
	}
}

func TestDOB(t *testing.T) {
	if _, ok := DOB("1990-04-12"); !ok {
		t.Error("want valid date")
	}
	for _, s := range []string{"", "12/04/1990", "3099-01-01", "not-a-date"} {
		if _, ok := DOB(s); ok {
			t.Errorf("want invalid: %q", s)
		}
	}
}

func TestQty(t *testing.T) {
	cases := map[string]int{"3": 3, "0": 0, "-2": 0, "500": 99, "x": 0, " 7 ": 7}
	for in, want := range cases {
		if got := Qty(in); got != want {
			t.Errorf("Qty(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestPassword(t *testing.T) {
	if !Password("Passw0rd!") {
		t.Error("want valid")
	}
	for _, s := range []string{"short1!", "alllowercase1!", "NOUPPER???", "NoDigits!!"} {
		if Password(s) {
			t.Errorf("want invalid: %q", s)
		}
	}
}

func TestID(t *testing.T) {
	if _, ok := ID("sku-0001"); !ok {
		t.Error("want valid id")
	}
	for _, s := range []string{"", "has space", "semi;colon"} {
		if _, ok := ID(s); ok {
			t.Errorf("want invalid: %q", s)
		}
	}
}
