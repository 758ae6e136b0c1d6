package domain

import "fmt"

// Network is a blockchain network creators and brands can deposit on.
type Network string

const (
	NetworkSolana   Network = "solana"
	NetworkEthereum Network = "ethereum"
	NetworkBase     Network = "base"
	NetworkPolygon  Network = "polygon"
	NetworkArbitrum Network = "arbitrum"
	NetworkOptimism Network = "optimism"
)

// ChainFamily groups networks that share one derivation scheme and address
// format. All EVM networks share a single derived address per index.
type ChainFamily string

const (
	FamilySolana ChainFamily = "solana"
	FamilyEVM    ChainFamily = "evm"
)

// ParseNetwork validates a network string.
func ParseNetwork(s string) (Network, error) {
	n := Network(s)
	if _, err := n.Family(); err != nil {
		return "", err
	}
	return n, nil
}

// Family resolves the chain family for a network.
func (n Network) Family() (ChainFamily, error) {
	switch n {
	case NetworkSolana:
		return FamilySolana, nil
	case NetworkEthereum, NetworkBase, NetworkPolygon, NetworkArbitrum, NetworkOptimism:
		return FamilyEVM, nil
	default:
		return "", fmt.Errorf("unsupported network: %q", string(n))
	}
}
