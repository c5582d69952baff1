package validators

import "testing"

func TestIsClientPhoneValid(t *testing.T) {
	valid := []string{
		"11988887777",
		"(11) 98888-7777",
		"+55 11 98888-7777",
		"1133334444",
	}
	for _, p := range valid {
		if !IsClientPhoneValid(p) {
			t.Fatalf("expected %q to be valid", p)
		}
	}

	invalid := []string{
		"",
		"98888-7777",    // sem DDD
		"11 9888 777a",  // letra
		"telefone",
		"(11) 9888.7777", // separador não aceito
	}
	for _, p := range invalid {
		if IsClientPhoneValid(p) {
			t.Fatalf("expected %q to be invalid", p)
		}
	}
}
