package api

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkSepolia = "sepolia"
)

// Etherscan-compatible API endpoints
const (
	// mainnet api
	MainnetAPIURL = "https://api.etherscan.io/api"

	// sepolia testnet api
	SepoliaAPIURL = "https://api-sepolia.etherscan.io/api"
)
