package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fero-tech/claimrunner/pkg/log"
)

func TestClaimWithoutKeyExitsCleanly(t *testing.T) {
	t.Setenv("PRIVATE_KEY", "")
	os.Unsetenv("PRIVATE_KEY")

	var out bytes.Buffer
	log.Logger.SetOutput(&out)
	defer log.Logger.SetOutput(os.Stdout)

	rootCmd.SetArgs([]string{"claim", "--env-file", filepath.Join(t.TempDir(), "none.env")})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("claim returned %v, failures must not change the exit status", err)
	}
	logs := out.String()
	if !strings.Contains(logs, "PRIVATE_KEY is not set") || !strings.Contains(logs, "CONFIGURATION_ERROR") {
		t.Errorf("configuration error not logged:\n%s", logs)
	}
	if strings.Contains(logs, "wallet address") {
		t.Errorf("run went past the key check:\n%s", logs)
	}
}

func TestInfoWithoutKeyExitsCleanly(t *testing.T) {
	t.Setenv("PRIVATE_KEY", "")
	os.Unsetenv("PRIVATE_KEY")

	var out bytes.Buffer
	log.Logger.SetOutput(&out)
	defer log.Logger.SetOutput(os.Stdout)

	rootCmd.SetArgs([]string{"info", "--env-file", filepath.Join(t.TempDir(), "none.env")})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("info returned %v", err)
	}
	logs := out.String()
	if !strings.Contains(logs, "PRIVATE_KEY is not set") || !strings.Contains(logs, "set PRIVATE_KEY in the environment") {
		t.Errorf("missing key not reported:\n%s", logs)
	}
	if strings.Contains(logs, "level=info msg=account") {
		t.Errorf("info went past the key check:\n%s", logs)
	}
}
