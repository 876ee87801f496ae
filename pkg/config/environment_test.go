package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironments_Resolve(t *testing.T) {
	for _, name := range EnvironmentNames() {
		t.Run(name, func(t *testing.T) {
			env, err := LookupEnvironment(name)
			require.NoError(t, err)

			c, err := env.Resolve()
			require.NoError(t, err)

			assert.Equal(t, name, c.Name)
			assert.Equal(t, env.EthLedger, c.EthLedger.String())
			assert.Equal(t, env.EthMinter, c.EthMinter.String())
			assert.Equal(t, env.USDCLedger, c.USDCLedger.String())
			assert.Equal(t, env.USDCIndex, c.USDCIndex.String())
			assert.Equal(t, env.Orchestrator, c.Orchestrator.String())
		})
	}
}

func TestEnvironments_Distinct(t *testing.T) {
	mainnet := mustLookup(t, EnvMainnet).MustResolve()
	sepolia := mustLookup(t, EnvSepolia).MustResolve()

	assert.NotEqual(t, mainnet.EthLedger, sepolia.EthLedger)
	assert.NotEqual(t, mainnet.EthMinter, sepolia.EthMinter)
	assert.NotEqual(t, mainnet.USDCLedger, sepolia.USDCLedger)
	assert.NotEqual(t, mainnet.Orchestrator, sepolia.Orchestrator)
}

func TestEnvironmentNames(t *testing.T) {
	assert.Equal(t, []string{EnvMainnet, EnvSepolia}, EnvironmentNames())
}

func TestLookupEnvironment_Unknown(t *testing.T) {
	_, err := LookupEnvironment("regtest")
	assert.Error(t, err)
}

func TestMustResolve_MalformedPanics(t *testing.T) {
	env := Environment{Name: "broken", EthLedger: "not-a-principal"}

	_, err := env.Resolve()
	assert.Error(t, err)
	assert.Panics(t, func() { env.MustResolve() })
}

func mustLookup(t *testing.T, name string) Environment {
	t.Helper()
	env, err := LookupEnvironment(name)
	require.NoError(t, err)
	return env
}
