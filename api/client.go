package api

// Explorer API Client-
//
// Files:
//   config.go   - API endpoints and network constants
//   types.go    - Struct definitions (response envelope, transaction record)
//   errors.go   - TransportError and RemoteError
//   base.go     - Core client functionality (Client struct, NewClient, query helper)
//   account.go  - Account queries (balance, transactions, token balance)
//
// Usage:
//   client := api.NewClient(apiKey, address)         // from base.go
//   balance, err := client.GetBalance()              // from account.go
//   txs, err := client.GetTransactions()             // from account.go
//   tokens, err := client.GetTokenBalance(contract)  // from account.go
