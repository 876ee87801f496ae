package config

import (
	"fmt"
	"sort"

	"github.com/aviate-labs/agent-go/principal"
)

// Built-in environment names
const (
	EnvMainnet = "mainnet"
	EnvSepolia = "sepolia"
)

// Environment lists the canisters one network deployment talks to. The ids are
// compiled in; only the environment name is chosen at startup.
type Environment struct {
	Name         string
	EthLedger    string
	EthMinter    string
	USDCLedger   string
	USDCIndex    string
	Orchestrator string
}

var environments = map[string]Environment{
	EnvMainnet: {
		Name:         EnvMainnet,
		EthLedger:    "ss2fx-dyaaa-aaaar-qacoq-cai",
		EthMinter:    "sv3dd-oaaaa-aaaar-qacoa-cai",
		USDCLedger:   "xevnm-gaaaa-aaaar-qafnq-cai",
		USDCIndex:    "xrs4b-hiaaa-aaaar-qafoa-cai",
		Orchestrator: "vxkom-oyaaa-aaaar-qafda-cai",
	},
	EnvSepolia: {
		Name:         EnvSepolia,
		EthLedger:    "apia6-jaaaa-aaaar-qabma-cai",
		EthMinter:    "jzenf-aiaaa-aaaar-qaa7q-cai",
		USDCLedger:   "yfumr-cyaaa-aaaar-qaela-cai",
		USDCIndex:    "ycvkf-paaaa-aaaar-qaelq-cai",
		Orchestrator: "2s5qh-7aaaa-aaaar-qadya-cai",
	},
}

// Canisters is an Environment with its canister ids decoded.
type Canisters struct {
	Name         string
	EthLedger    principal.Principal
	EthMinter    principal.Principal
	USDCLedger   principal.Principal
	USDCIndex    principal.Principal
	Orchestrator principal.Principal
}

// LookupEnvironment returns the built-in environment with the given name.
func LookupEnvironment(name string) (Environment, error) {
	env, ok := environments[name]
	if !ok {
		return Environment{}, fmt.Errorf("unknown environment %q (known: %v)", name, EnvironmentNames())
	}
	return env, nil
}

// EnvironmentNames returns the sorted names of the built-in environments.
func EnvironmentNames() []string {
	names := make([]string, 0, len(environments))
	for name := range environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve decodes every canister id of the environment.
func (e Environment) Resolve() (*Canisters, error) {
	c := &Canisters{Name: e.Name}
	fields := []struct {
		name string
		text string
		dst  *principal.Principal
	}{
		{"eth_ledger", e.EthLedger, &c.EthLedger},
		{"eth_minter", e.EthMinter, &c.EthMinter},
		{"usdc_ledger", e.USDCLedger, &c.USDCLedger},
		{"usdc_index", e.USDCIndex, &c.USDCIndex},
		{"orchestrator", e.Orchestrator, &c.Orchestrator},
	}
	for _, f := range fields {
		p, err := principal.Decode(f.text)
		if err != nil {
			return nil, fmt.Errorf("environment %s: invalid %s %q: %w", e.Name, f.name, f.text, err)
		}
		*f.dst = p
	}
	return c, nil
}

// MustResolve is Resolve for compiled-in constants; a malformed id panics.
func (e Environment) MustResolve() *Canisters {
	c, err := e.Resolve()
	if err != nil {
		panic(err)
	}
	return c
}
