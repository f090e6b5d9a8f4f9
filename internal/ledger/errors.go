package ledger

import "net/http"

// Code is a closed enumeration of every way applying a Transaction to an
// Account can fail. Errors are values, never ad-hoc strings, so callers
// can switch on Code without string matching.
type Code string

const (
	CodeAmountOutOfBounds             Code = "AMOUNT_OUT_OF_BOUNDS"
	CodeDepositOverflow               Code = "DEPOSIT_OVERFLOW"
	CodeResolveOverflow               Code = "RESOLVE_OVERFLOW"
	CodeDisputeOverflow               Code = "DISPUTE_OVERFLOW"
	CodeTotalOverflow                 Code = "TOTAL_OVERFLOW"
	CodeInsufficientFundsForWithdraw  Code = "INSUFFICIENT_FUNDS_FOR_WITHDRAW"
	CodeInsufficientFundsForDispute   Code = "INSUFFICIENT_FUNDS_FOR_DISPUTE"
	CodeInvalidDisputeTarget          Code = "INVALID_DISPUTE_TARGET"
	CodeInvalidResolveTarget          Code = "INVALID_RESOLVE_TARGET"
	CodeInvalidChargeBackTarget       Code = "INVALID_CHARGEBACK_TARGET"
	CodeAlreadyDisputed               Code = "ALREADY_DISPUTED"
	CodeAlreadyChargedBack            Code = "ALREADY_CHARGED_BACK"
	CodeTargetNotDisputed             Code = "TARGET_NOT_DISPUTED"
	CodeLockedAccount                 Code = "LOCKED_ACCOUNT"
	CodeInsufficientDepositAmount     Code = "INSUFFICIENT_DEPOSIT_AMOUNT"
	CodeInsufficientWithdrawAmount    Code = "INSUFFICIENT_WITHDRAW_AMOUNT"
)

var codeMessages = map[Code]string{
	CodeAmountOutOfBounds:            "amount is out of bounds",
	CodeDepositOverflow:              "available funds overflow",
	CodeResolveOverflow:              "available funds overflow",
	CodeDisputeOverflow:              "held funds overflow",
	CodeTotalOverflow:                "total funds overflow",
	CodeInsufficientFundsForWithdraw: "not enough available funds to withdraw",
	CodeInsufficientFundsForDispute:  "not enough available funds to dispute",
	CodeInvalidDisputeTarget:         "target transaction is not a disputable deposit",
	CodeInvalidResolveTarget:         "target transaction is not a disputable deposit",
	CodeInvalidChargeBackTarget:      "target transaction is not a disputable deposit",
	CodeAlreadyDisputed:              "transaction is already disputed",
	CodeAlreadyChargedBack:           "transaction was already charged back",
	CodeTargetNotDisputed:            "target transaction is not currently disputed",
	CodeLockedAccount:                "account is locked",
	CodeInsufficientDepositAmount:    "deposit amount must be greater than zero",
	CodeInsufficientWithdrawAmount:   "withdraw amount must be greater than zero",
}

// Error is the error type returned by every fallible ledger operation.
type Error struct {
	Code Code
}

func (e Error) Error() string {
	if msg, ok := codeMessages[e.Code]; ok {
		return msg
	}
	return string(e.Code)
}

func newErr(code Code) Error { return Error{Code: code} }

var (
	ErrAmountOutOfBounds            = newErr(CodeAmountOutOfBounds)
	ErrDepositOverflow              = newErr(CodeDepositOverflow)
	ErrResolveOverflow              = newErr(CodeResolveOverflow)
	ErrDisputeOverflow              = newErr(CodeDisputeOverflow)
	ErrTotalOverflow                = newErr(CodeTotalOverflow)
	ErrInsufficientFundsForWithdraw = newErr(CodeInsufficientFundsForWithdraw)
	ErrInsufficientFundsForDispute  = newErr(CodeInsufficientFundsForDispute)
	ErrInvalidDisputeTarget         = newErr(CodeInvalidDisputeTarget)
	ErrInvalidResolveTarget         = newErr(CodeInvalidResolveTarget)
	ErrInvalidChargeBackTarget      = newErr(CodeInvalidChargeBackTarget)
	ErrAlreadyDisputed              = newErr(CodeAlreadyDisputed)
	ErrAlreadyChargedBack           = newErr(CodeAlreadyChargedBack)
	ErrTargetNotDisputed            = newErr(CodeTargetNotDisputed)
	ErrLockedAccount                = newErr(CodeLockedAccount)
	ErrInsufficientDepositAmount    = newErr(CodeInsufficientDepositAmount)
	ErrInsufficientWithdrawAmount   = newErr(CodeInsufficientWithdrawAmount)
)

// APIError adapts an Error to the teacher's HTTP-facing error shape. The
// engine core itself never speaks HTTP, and the admin surface
// (internal/admin) serves only /healthz and /metrics, so nothing in this
// repository currently calls AsAPIError.
type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e APIError) Error() string { return e.Message }

// AsAPIError maps a ledger Error onto an HTTP status, following the same
// code/message/status shape as the teacher's src/errors.APIError.
func AsAPIError(err Error) APIError {
	status := http.StatusBadRequest
	switch err.Code {
	case CodeLockedAccount:
		status = http.StatusConflict
	case CodeInvalidDisputeTarget, CodeInvalidResolveTarget, CodeInvalidChargeBackTarget:
		status = http.StatusNotFound
	}
	return APIError{Code: err.Code, Message: err.Error(), Status: status}
}
