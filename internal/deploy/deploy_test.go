package deploy

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/chain"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestManifestAddressFallbacks(t *testing.T) {
	cases := []struct {
		body string
		want string
		err  error
	}{
		{`{"contractAddress":"0xe5d918f4777e95F4021Ed1Ef5CCCBB81eeC8Adc9"}`, "0xe5d918f4777e95F4021Ed1Ef5CCCBB81eeC8Adc9", nil},
		{"{\"address\":\" 0xe5d918f4777e95F4021Ed1Ef5CCCBB81eeC8Adc9\u200b\"}", "0xe5d918f4777e95F4021Ed1Ef5CCCBB81eeC8Adc9", nil},
		{`{"contract":{"address":"0xe5d918f4777e95F4021Ed1Ef5CCCBB81eeC8Adc9"}}`, "0xe5d918f4777e95F4021Ed1Ef5CCCBB81eeC8Adc9", nil},
		{`{"network":"localhost"}`, "", ErrNoAddress},
	}
	for _, tc := range cases {
		m, err := ReadManifest(writeFile(t, "deployment.json", tc.body))
		require.NoError(t, err)
		addr, err := m.ResolvedAddress()
		if tc.err != nil {
			require.ErrorIs(t, err, tc.err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, common.HexToAddress(tc.want), addr)
	}

	_, err := ReadManifest(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "deployment file not found")

	m, err := ReadManifest(writeFile(t, "bad.json", `{"address":"0x1234"}`))
	require.NoError(t, err)
	_, err = m.ResolvedAddress()
	require.ErrorContains(t, err, "invalid contract address")
}

func TestCheckSize(t *testing.T) {
	small := Artifact{ContractName: "FoodTrace", Bytecode: "0x6080604052", DeployedBytecode: "0x6080"}
	report, err := CheckSize(small)
	require.NoError(t, err)
	require.Equal(t, 5, report.InitBytes)
	require.Equal(t, 2, report.RuntimeBytes)
	require.False(t, report.ExceedsEIP170)
	require.False(t, report.LargeInitCode)

	huge := "0x" + strings.Repeat("00", EIP170Limit+1)
	report, err = CheckSize(Artifact{Bytecode: huge})
	require.NoError(t, err)
	require.Equal(t, EIP170Limit+1, report.RuntimeBytes, "init code stands in for runtime code")
	require.True(t, report.ExceedsEIP170)

	report, err = CheckSize(Artifact{Bytecode: "0x" + strings.Repeat("ff", InitCodeWarn+1), DeployedBytecode: "0x00"})
	require.NoError(t, err)
	require.True(t, report.LargeInitCode)
	require.False(t, report.ExceedsEIP170)

	_, err = CheckSize(Artifact{Bytecode: "0xzz"})
	require.Error(t, err)
}

func TestReadArtifact(t *testing.T) {
	path := writeFile(t, "FoodTrace.json", `{"contractName":"FoodTrace","abi":[],"bytecode":"0x00","deployedBytecode":"0x"}`)
	a, err := ReadArtifact(path)
	require.NoError(t, err)
	require.Equal(t, "FoodTrace", a.ContractName)
}

func TestSyncEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	changed, err := SyncEnv(path, ContractAddressKey, "0xabc")
	require.NoError(t, err)
	require.True(t, changed)

	require.NoError(t, godotenv.Write(map[string]string{ContractAddressKey: "0xabc", "CHAIN_ID": "31337"}, path))
	changed, err = SyncEnv(path, ContractAddressKey, "0xabc")
	require.NoError(t, err)
	require.False(t, changed)

	changed, err = SyncEnv(path, ContractAddressKey, "0xdef")
	require.NoError(t, err)
	require.True(t, changed)

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	require.Equal(t, "0xdef", env[ContractAddressKey])
	require.Equal(t, "31337", env["CHAIN_ID"])
}

func TestSyncEnvRewritesOnlyTheAddressLine(t *testing.T) {
	body := "# frontend settings\nZ_LAST=1\nCONTRACT_ADDRESS=0xold\nCONTRACT_ADDRESS_LABEL=keep\n# trailing note\nA_FIRST=2\n"
	path := writeFile(t, ".env", body)

	changed, err := SyncEnv(path, ContractAddressKey, "0xnew")
	require.NoError(t, err)
	require.True(t, changed)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "# frontend settings\nZ_LAST=1\nCONTRACT_ADDRESS=\"0xnew\"\nCONTRACT_ADDRESS_LABEL=keep\n# trailing note\nA_FIRST=2\n"
	require.Equal(t, want, string(raw))

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	require.Equal(t, "0xnew", env[ContractAddressKey])
	require.Equal(t, "keep", env["CONTRACT_ADDRESS_LABEL"])
}

type stubCode struct {
	code []byte
}

func (s stubCode) ChainID(context.Context) (*big.Int, error) { return big.NewInt(31337), nil }

func (s stubCode) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return s.code, nil
}

type stubCounter struct {
	n   int64
	err error
}

func (s stubCounter) GetBatchCount(context.Context) (*big.Int, error) {
	if s.err != nil {
		return nil, s.err
	}
	return big.NewInt(s.n), nil
}

func TestCheckContract(t *testing.T) {
	ctx := context.Background()
	addr := common.HexToAddress("0xe5d918f4777e95F4021Ed1Ef5CCCBB81eeC8Adc9")
	parsed := chain.DefaultABI()

	report, err := CheckContract(ctx, stubCode{code: []byte{0x60, 0x80}}, stubCounter{n: 3}, addr, parsed)
	require.NoError(t, err)
	require.Equal(t, "31337", report.ChainID)
	require.Equal(t, 2, report.CodeBytes)
	require.NotNil(t, report.BatchCount)
	require.Equal(t, "3", *report.BatchCount)
	require.Empty(t, report.MissingMethods)
	require.True(t, slices.IsSorted(report.Functions), "functions = %v", report.Functions)
	require.Contains(t, report.Functions, "createBatch")

	report, err = CheckContract(ctx, stubCode{code: []byte{0x60}}, stubCounter{err: errors.New("execution reverted")}, addr, parsed)
	require.NoError(t, err)
	require.Nil(t, report.BatchCount)
	require.Equal(t, "execution reverted", report.BatchCountErr)

	_, err = CheckContract(ctx, stubCode{}, stubCounter{}, addr, parsed)
	require.ErrorContains(t, err, "no contract code")
}
