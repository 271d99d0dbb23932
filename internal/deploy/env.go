package deploy

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const ContractAddressKey = "CONTRACT_ADDRESS"

// SyncEnv sets key to value in the dotenv file at path, creating it when
// missing. Only the assignment of key is rewritten (or appended); comments and
// the order of other entries are left alone. It reports whether the file changed.
func SyncEnv(path, key, value string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	env, err := godotenv.Unmarshal(string(raw))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	if current, ok := env[key]; ok && current == value {
		return false, nil
	}
	assignment, err := godotenv.Marshal(map[string]string{key: value})
	if err != nil {
		return false, err
	}

	lines := strings.Split(string(raw), "\n")
	replaced := false
	for i, line := range lines {
		if assigns(line, key) {
			lines[i] = assignment
			replaced = true
		}
	}
	body := strings.Join(lines, "\n")
	if !replaced {
		if body != "" && !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		body += assignment + "\n"
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(body), mode); err != nil {
		return false, err
	}
	return true, nil
}

// assigns reports whether line is a KEY=... (or export KEY=...) line for key.
func assigns(line, key string) bool {
	l := strings.TrimSpace(line)
	l = strings.TrimSpace(strings.TrimPrefix(l, "export "))
	rest, ok := strings.CutPrefix(l, key)
	if !ok {
		return false
	}
	rest = strings.TrimLeft(rest, " \t")
	return strings.HasPrefix(rest, "=") || strings.HasPrefix(rest, ":")
}
