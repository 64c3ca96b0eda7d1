package api

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
)

// txlist defaults cover the explorer's full block range.
const (
	defaultStartBlock = 0
	defaultEndBlock   = 99999999
	defaultSortOrder  = "asc"
)

// The explorer reports an empty history with this error-status message
// rather than a success envelope holding an empty array.
const noTransactionsMessage = "No transactions found"

// TxListOption narrows or reorders a GetTransactions query.
type TxListOption func(*txListQuery)

type txListQuery struct {
	startBlock int64
	endBlock   int64
	sort       string
}

// WithStartBlock sets the first block to include.
func WithStartBlock(n int64) TxListOption {
	return func(q *txListQuery) {
		q.startBlock = n
	}
}

// WithEndBlock sets the last block to include.
func WithEndBlock(n int64) TxListOption {
	return func(q *txListQuery) {
		q.endBlock = n
	}
}

// WithSort sets the result order, "asc" or "desc". The value is passed
// through to the service unvalidated.
func WithSort(order string) TxListOption {
	return func(q *txListQuery) {
		q.sort = order
	}
}

// GetBalance fetches the account's ETH balance in wei, exactly as the
// service reports it. Converting to ETH for display is the caller's
// concern.
func (c *Client) GetBalance() (string, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "balance")
	params.Set("address", c.address)
	params.Set("tag", "latest")

	result, err := c.query(params)
	if err != nil {
		return "", err
	}

	return decodeNumericString(result)
}

// GetTransactions fetches the account's normal-transaction history in
// whatever order the service returns it. An address with no history
// yields an empty slice, not an error.
func (c *Client) GetTransactions(opts ...TxListOption) ([]Transaction, error) {
	q := txListQuery{
		startBlock: defaultStartBlock,
		endBlock:   defaultEndBlock,
		sort:       defaultSortOrder,
	}
	for _, opt := range opts {
		opt(&q)
	}

	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "txlist")
	params.Set("address", c.address)
	params.Set("startblock", strconv.FormatInt(q.startBlock, 10))
	params.Set("endblock", strconv.FormatInt(q.endBlock, 10))
	params.Set("sort", q.sort)

	result, err := c.query(params)
	if err != nil {
		var remoteErr *RemoteError
		if errors.As(err, &remoteErr) && remoteErr.Message == noTransactionsMessage {
			return []Transaction{}, nil
		}
		return nil, err
	}

	var txs []Transaction
	if err := json.Unmarshal(result, &txs); err != nil {
		return nil, &TransportError{Op: "failed to parse transaction list", Err: err}
	}

	return txs, nil
}

// GetTokenBalance fetches the account's balance of the ERC-20 token at
// contractAddress, in the token's smallest unit.
func (c *Client) GetTokenBalance(contractAddress string) (string, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "tokenbalance")
	params.Set("address", c.address)
	params.Set("contractaddress", contractAddress)
	params.Set("tag", "latest")

	result, err := c.query(params)
	if err != nil {
		return "", err
	}

	return decodeNumericString(result)
}

// Helper to unwrap a quoted numeric result payload
func decodeNumericString(result json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(result, &s); err != nil {
		return "", &TransportError{Op: "failed to parse balance", Err: err}
	}
	return s, nil
}
