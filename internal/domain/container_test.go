package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningContainer_MappedPort(t *testing.T) {
	c := RunningContainer{
		ID:   "abc",
		Host: "127.0.0.1",
		Ports: []ResolvedPortMapping{
			{ContainerPort: 80, HostPort: 32768, Protocol: ProtocolTCP},
			{ContainerPort: 53, HostPort: 32769, Protocol: ProtocolUDP},
		},
	}

	port, err := c.MappedPort(80)
	require.NoError(t, err)
	assert.Equal(t, uint16(32768), port)

	port, err = c.MappedPort(53)
	require.NoError(t, err)
	assert.Equal(t, uint16(32769), port)

	_, err = c.MappedPort(443)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPortNotFound))

	var cerr *ContainerError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, uint16(443), cerr.Port)
}

func TestRunningContainer_Address(t *testing.T) {
	c := RunningContainer{Ports: []ResolvedPortMapping{{ContainerPort: 80, HostPort: 8080}}}

	addr, err := c.Address(80)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", addr)

	c.Host = "::1"
	addr, err = c.Address(80)
	require.NoError(t, err)
	assert.Equal(t, "[::1]:8080", addr)
}

func TestRunningContainer_Equal(t *testing.T) {
	a := RunningContainer{ID: "a", Name: "n", Image: "nginx", Host: DefaultHost,
		Ports: []ResolvedPortMapping{{ContainerPort: 80, HostPort: 1, Protocol: ProtocolTCP}}}
	b := a
	b.Ports = append([]ResolvedPortMapping(nil), a.Ports...)

	assert.True(t, a.Equal(b))

	b.Ports[0].HostPort = 2
	assert.False(t, a.Equal(b))
}

func TestRunningContainer_ShortID(t *testing.T) {
	assert.Equal(t, "0123456789ab", RunningContainer{ID: "0123456789abcdef"}.ShortID())
	assert.Equal(t, "abc", RunningContainer{ID: "abc"}.ShortID())
}
