package ynab

// Wire types for the YNAB v1 API. Every response wraps its resource in a
// "data" envelope; monetary amounts are integers in milliunits.

type account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
	Closed  bool   `json:"closed"`
	Deleted bool   `json:"deleted"`
}

type transaction struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Amount     int64   `json:"amount"`
	CategoryID *string `json:"category_id"`
	PayeeName  *string `json:"payee_name"`
	AccountID  string  `json:"account_id"`
	Memo       *string `json:"memo"`
}

type budget struct {
	Name           string `json:"name"`
	LastModifiedOn string `json:"last_modified_on"`
	CurrencyFormat struct {
		IsoCode string `json:"iso_code"`
	} `json:"currency_format"`
}

type accountsResponse struct {
	Data struct {
		Accounts []account `json:"accounts"`
	} `json:"data"`
}

type transactionsResponse struct {
	Data struct {
		Transactions []transaction `json:"transactions"`
	} `json:"data"`
}

type budgetResponse struct {
	Data struct {
		Budget budget `json:"budget"`
	} `json:"data"`
}

// errorResponse is the upstream error envelope.
type errorResponse struct {
	Error struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	} `json:"error"`
}
