package chain

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultABIHasEverything(t *testing.T) {
	if missing := MissingMethods(DefaultABI()); len(missing) != 0 {
		t.Fatalf("embedded abi missing %v", missing)
	}
}

func TestLoadABIFromArtifact(t *testing.T) {
	dir := t.TempDir()
	artifact := `{"contractName":"Traceability","abi":` + string(defaultABIJSON) + `,"bytecode":"0x00"}`
	path := filepath.Join(dir, "Traceability.json")
	if err := os.WriteFile(path, []byte(artifact), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	parsed, err := LoadABI(path)
	if err != nil {
		t.Fatalf("load artifact: %v", err)
	}
	if _, ok := parsed.Methods["getBatchInfo"]; !ok {
		t.Fatalf("artifact abi lost getBatchInfo")
	}

	bare := filepath.Join(dir, "abi.json")
	if err := os.WriteFile(bare, []byte(`[{"type":"function","name":"hasRole","inputs":[],"outputs":[],"stateMutability":"view"}]`), 0o644); err != nil {
		t.Fatalf("write bare abi: %v", err)
	}
	parsed, err = LoadABI(bare)
	if err != nil {
		t.Fatalf("load bare abi: %v", err)
	}
	if len(MissingMethods(parsed)) != len(RequiredMethods) {
		t.Fatalf("expected all but hasRole and the event missing, got %v", MissingMethods(parsed))
	}

	if _, err := ParseABI([]byte(`{"bytecode":"0x"}`)); err == nil {
		t.Fatalf("expected error for artifact without abi")
	}
}
