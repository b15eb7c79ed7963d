package config

import "testing"

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("WIFIHUNT_TEST_SET", "value")
	if got := GetEnv("WIFIHUNT_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("GetEnv set: got=%q want=%q", got, "value")
	}
	if got := GetEnv("WIFIHUNT_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv unset: got=%q want=%q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("WIFIHUNT_TEST_INT", "42")
	t.Setenv("WIFIHUNT_TEST_BAD_INT", "forty-two")

	if got := GetEnvInt("WIFIHUNT_TEST_INT", 7); got != 42 {
		t.Fatalf("GetEnvInt valid: got=%d want=42", got)
	}
	if got := GetEnvInt("WIFIHUNT_TEST_BAD_INT", 7); got != 7 {
		t.Fatalf("GetEnvInt invalid: got=%d want=7", got)
	}
	if got := GetEnvInt("WIFIHUNT_TEST_UNSET_INT", 7); got != 7 {
		t.Fatalf("GetEnvInt unset: got=%d want=7", got)
	}
}
