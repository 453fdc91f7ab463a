package helper

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("PORTAL_TEST_SET", "value")

	if got := GetEnv("PORTAL_TEST_SET"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("PORTAL_TEST_UNSET"); got != "" {
		t.Errorf("GetEnv for unset var = %q, want empty", got)
	}
	if got := GetEnv("PORTAL_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv with default = %q, want fallback", got)
	}
}

func TestGetEnvAsIntWithDefault(t *testing.T) {
	t.Setenv("PORTAL_TEST_INT", "45")
	t.Setenv("PORTAL_TEST_BAD_INT", "forty-five")

	if got := GetEnvAsIntWithDefault("PORTAL_TEST_INT", 15); got != 45 {
		t.Errorf("set var = %d, want 45", got)
	}
	if got := GetEnvAsIntWithDefault("PORTAL_TEST_BAD_INT", 15); got != 15 {
		t.Errorf("unparseable var = %d, want default 15", got)
	}
	if got := GetEnvAsIntWithDefault("PORTAL_TEST_UNSET_INT", 15); got != 15 {
		t.Errorf("unset var = %d, want default 15", got)
	}
}
