package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetFieldsParsesFloats(t *testing.T) {
	m := NewModel()
	m.SetStartLat("37.0")
	m.SetStartLon("-122.0")
	m.SetEndLat("37.1")
	m.SetEndLon("-122.1")

	require.Equal(t, 37.0, m.Start().Lat)
	require.Equal(t, -122.0, m.Start().Lon)
	require.Equal(t, 37.1, m.End().Lat)
	require.Equal(t, -122.1, m.End().Lon)
	require.True(t, m.Valid())
}

func TestInvalidInputStoresNaN(t *testing.T) {
	m := NewModel()
	m.SetStartLat("not-a-number")
	m.SetStartLon("-122.0")
	m.SetEndLat("37.1")
	m.SetEndLon("-122.1")

	require.True(t, math.IsNaN(m.Start().Lat))
	require.Equal(t, -122.0, m.Start().Lon)
	require.False(t, m.Valid())
}

func TestFieldsAreIndependent(t *testing.T) {
	m := NewModel()
	m.SetStartLat("10")
	m.SetStartLat("oops")
	m.SetStartLat("20")

	require.Equal(t, 20.0, m.Start().Lat)
	// Other fields untouched by the edits above.
	require.True(t, math.IsNaN(m.Start().Lon))
	require.True(t, math.IsNaN(m.End().Lat))
}

func TestOutOfRangeValuesAreKept(t *testing.T) {
	m := NewModel()
	m.SetStartLat("200")
	m.SetStartLon("0")
	m.SetEndLat("0")
	m.SetEndLon("0")

	// Out-of-range but numeric values pass validation; the backend is
	// the authority on rejecting them.
	require.True(t, m.Valid())
	require.False(t, m.Start().InRange())
}
