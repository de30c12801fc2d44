package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"S", "M", "L"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["S","M","L"]`, string(v.([]byte)))

	// nil marshals as an empty list, not SQL NULL.
	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v.([]byte)))
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["Hitam","Putih"]`)))
	assert.Equal(t, StringList{"Hitam", "Putih"}, l)

	require.NoError(t, l.Scan(`["Navy"]`))
	assert.Equal(t, StringList{"Navy"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)

	assert.Error(t, l.Scan(42))
}
