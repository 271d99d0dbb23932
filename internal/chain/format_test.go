package chain

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestStatusHelpers(t *testing.T) {
	cases := []struct {
		status       int
		text, badge string
	}{
		{0, "Processing", "warning"},
		{1, "In Transit", "info"},
		{2, "Delivered", "success"},
		{3, "Compromised", "danger"},
		{9, "Unknown", "secondary"},
	}
	for _, tc := range cases {
		if got := StatusText(tc.status); got != tc.text {
			t.Fatalf("StatusText(%d) = %q", tc.status, got)
		}
		if got := StatusBadge(tc.status); got != tc.badge {
			t.Fatalf("StatusBadge(%d) = %q", tc.status, got)
		}
	}
	one := uint8(1)
	if got := StatusLabel(&one); got != "InTransit" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := StatusLabel(nil); got != "Unknown" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestFormatAddress(t *testing.T) {
	if got := FormatAddress(" " + DefaultDeployer); got != "0xf39F...2266" {
		t.Fatalf("unexpected short form %q", got)
	}
	if got := FormatAddress(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestRoleHash(t *testing.T) {
	admin, err := RoleHash(AdminRole)
	if err != nil || admin != (common.Hash{}) {
		t.Fatalf("admin role must be the zero hash, got %s err=%v", admin.Hex(), err)
	}
	processor, _ := RoleHash(ProcessorRole)
	distributor, _ := RoleHash(DistributorRole)
	if processor == distributor || processor == (common.Hash{}) {
		t.Fatalf("role hashes must be distinct")
	}
	if _, err := RoleHash("processor_role"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("role keys are case sensitive, got %v", err)
	}
	if len(RoleKeys()) != 5 {
		t.Fatalf("unexpected role keys %v", RoleKeys())
	}
}
