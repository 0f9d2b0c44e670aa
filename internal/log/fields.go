package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldTool      = "tool"
	FieldBudgetID  = "budget_id"
	FieldMonths    = "months"
	FieldSince     = "since"
	FieldAccounts  = "accounts"
	FieldTxCount   = "transaction_count"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentReport = "report"
	ComponentTools  = "tools"
)

// Operations defines standard operation names
const (
	OpIncomeReport  = "income_report"
	OpBalanceReport = "balance_report"
	OpBudgetSummary = "budget_summary"
	OpStartup       = "startup"
)
