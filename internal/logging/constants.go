package logging

// Standardized field names for structured logging. Keeping these in one
// place makes log output consistent across the engine, scheduler and
// reminder loop.
const (
	FieldCustomerID = "customer_id"
	FieldCustomer   = "customer"
	FieldDebtID     = "debt_id"
	FieldPaymentID  = "payment_id"
	FieldTaskID     = "task_id"
	FieldAmount     = "amount"
	FieldDate       = "date"
	FieldDueDate    = "due_date"
	FieldStatus     = "status"
	FieldCondition  = "condition"
	FieldCount      = "count"
	FieldFile       = "file_path"
	FieldOperation  = "operation"
	FieldError      = "error"
)
