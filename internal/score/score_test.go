package score

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestComposite(t *testing.T) {
	cases := []struct {
		name    string
		onchain *int
		local   *float64
		want    *int
	}{
		{"nothing", nil, nil, nil},
		{"onchain only", intp(80), nil, intp(80)},
		{"local only", nil, floatp(4.0), intp(80)},
		{"both equal", intp(80), floatp(4.0), intp(80)},
		{"weighted", intp(90), floatp(2.0), intp(75)},
		{"local scaled", nil, floatp(4.5), intp(90)},
		{"zero ratings", nil, floatp(0), intp(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Composite(tc.onchain, tc.local))
		})
	}
}

func TestFromReputation(t *testing.T) {
	b := DefaultBounds()
	cases := []struct {
		raw  int64
		want int
	}{
		{-100, 0},
		{200, 100},
		{50, 50},
		{-5000, 0},
		{9000, 100},
		{0, 33},
		{1, 34},
	}
	for _, tc := range cases {
		got := FromReputation(big.NewInt(tc.raw), b)
		require.NotNil(t, got)
		require.Equal(t, tc.want, *got, "raw=%d", tc.raw)
	}
	require.Nil(t, FromReputation(nil, b))

	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	require.Equal(t, 100, *FromReputation(huge, b))
	require.Equal(t, 0, *FromReputation(new(big.Int).Neg(huge), b))
}

func TestInvertedBoundsFallBack(t *testing.T) {
	got := FromReputation(big.NewInt(50), Bounds{Min: 10, Max: 10})
	require.Equal(t, 50, *got)

	got = FromReputation(big.NewInt(5), Bounds{Min: 0, Max: 10})
	require.Equal(t, 50, *got)
}

func TestBadge(t *testing.T) {
	require.Equal(t, "", Badge(nil))
	require.Equal(t, "success", Badge(intp(75)))
	require.Equal(t, "warning", Badge(intp(40)))
	require.Equal(t, "secondary", Badge(intp(39)))
}
