package config

import (
	"os"
	"testing"
)

func TestConfigLoadsDotenvOnce(t *testing.T) {
	dir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	if err := os.WriteFile(".env", []byte("RESV_TEST_FIRST=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("RESV_TEST_FIRST") })

	if got := Config("RESV_TEST_FIRST"); got != "from-dotenv" {
		t.Fatalf("Config(RESV_TEST_FIRST) = %q, want %q", got, "from-dotenv")
	}

	// Keys added to the file after the first lookup must not appear:
	// the file is only read once per process.
	contents := "RESV_TEST_FIRST=from-dotenv\nRESV_TEST_SECOND=late\n"
	if err := os.WriteFile(".env", []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	if got := Config("RESV_TEST_SECOND"); got != "" {
		t.Fatalf("Config(RESV_TEST_SECOND) = %q, want empty", got)
	}

	if got := Config("RESV_TEST_FIRST"); got != "from-dotenv" {
		t.Fatalf("Config(RESV_TEST_FIRST) after rewrite = %q, want %q", got, "from-dotenv")
	}
}
