// =============================================================================
// Payroll File Encoder - CNAB240 Domain Types
// =============================================================================
//
// This file defines the value objects consumed by the CNAB240 batch encoder.
// They are built by the caller from portal data, handed to Encode once, and
// discarded with the returned string. Nothing in this package mutates them
// after construction.
//
// =============================================================================

package cnab

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sigrhx/payfile/internal/format"
)

// =============================================================================
// ACCOUNT TYPES
// =============================================================================

// AccountType identifies the kind of bank account held by a beneficiary.
type AccountType int

const (
	// Checking is a conta corrente.
	Checking AccountType = iota + 1

	// Savings is a conta poupança.
	Savings
)

// =============================================================================
// ORIGINATOR
// =============================================================================

// OriginatorAccount identifies the legal entity instructing the salary
// credits and the account the funds leave from. Supplied once per batch.
type OriginatorAccount struct {
	// TaxID is the originator CNPJ. Punctuation is tolerated; only the
	// digits are encoded.
	TaxID string

	// Name is the legal entity name. Normalized to plain ASCII on encode.
	Name string

	// BankCode is the 3-digit FEBRABAN bank code, e.g. "001".
	BankCode string

	// BankName is the bank's registered name for the file header.
	BankName string

	// Branch is the branch (agência) number, without check digit.
	Branch string

	// BranchCheck is the branch check digit. A missing digit is encoded as
	// a blank, matching what the receiving bank tolerates on remittance.
	BranchCheck string

	// Account is the account number, without check digit.
	Account string

	// AccountCheck is the account check digit.
	AccountCheck string

	// Agreement is the bank agreement (convênio) code for the salary
	// payment service.
	Agreement string

	// State is the two-letter state code written into the lot header.
	State string
}

// =============================================================================
// PAYMENT INSTRUCTION
// =============================================================================

// PaymentInstruction is one salary credit to one beneficiary. One instance
// per person being paid in the batch.
type PaymentInstruction struct {
	// Name is the beneficiary's full name.
	Name string

	// TaxID is the beneficiary CPF.
	TaxID string

	// BankCode, Branch, BranchCheck, Account and AccountCheck describe the
	// destination account.
	BankCode     string
	Branch       string
	BranchCheck  string
	Account      string
	AccountCheck string

	// Kind is the destination account kind (checking or savings). Carried
	// from the portal export and validated, but the salary layout encodes
	// the destination purely by branch/account.
	Kind AccountType

	// Amount is the payment value in BRL.
	Amount decimal.Decimal

	// CreditDate is the date the credit must be available.
	CreditDate time.Time

	// PaymentID is the caller-supplied unique identifier ("seu número")
	// echoed back by the bank in return files.
	PaymentID string
}

// =============================================================================
// BATCH
// =============================================================================

// Batch is the aggregate handed to Encode: one originator, an ordered list
// of payment instructions, the file sequence number and the generation
// timestamp. Exactly one lot per batch.
type Batch struct {
	Originator OriginatorAccount
	Payments   []PaymentInstruction

	// Sequence is the file sequence number (NSA) agreed with the bank.
	Sequence int

	// GeneratedAt is the generation timestamp written into the file
	// header. Two batches with identical fields, including this one,
	// encode to byte-identical files.
	GeneratedAt time.Time
}

// Total returns the sum of all payment amounts in the batch.
func (b Batch) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// =============================================================================
// BATCH VALIDATION
// =============================================================================

// Issue is a single batch validation complaint. Issues are collected, not
// thrown: the caller gets every problem in one pass.
type Issue struct {
	// Payment is the 1-based index of the offending payment instruction,
	// or 0 for batch-level problems.
	Payment int

	// Field names the offending field.
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (i Issue) Error() string {
	if i.Payment == 0 {
		return fmt.Sprintf("batch: %s: %s", i.Field, i.Message)
	}
	return fmt.Sprintf("payment %d: %s: %s", i.Payment, i.Field, i.Message)
}

// Validate checks the batch for structural problems that cannot degrade
// into padding. Field-level gaps (a missing check digit, a short name)
// still encode as blanks per the external layout; what is rejected here is
// input no syntactically valid remittance can be built from.
func (b Batch) Validate() []Issue {
	var issues []Issue

	if len(b.Payments) == 0 {
		issues = append(issues, Issue{Field: "payments", Message: "batch has no payment instructions"})
	}
	if format.Digits(b.Originator.BankCode) == "" {
		issues = append(issues, Issue{Field: "originator.bank_code", Message: "bank code is required"})
	}
	if format.Digits(b.Originator.TaxID) == "" {
		issues = append(issues, Issue{Field: "originator.tax_id", Message: "originator CNPJ is required"})
	}

	for i, p := range b.Payments {
		n := i + 1
		if format.Digits(p.TaxID) == "" {
			issues = append(issues, Issue{Payment: n, Field: "tax_id", Message: "beneficiary CPF is required"})
		}
		if !p.Amount.IsPositive() {
			issues = append(issues, Issue{Payment: n, Field: "amount", Message: "amount must be positive"})
		}
		if p.Kind != Checking && p.Kind != Savings {
			issues = append(issues, Issue{Payment: n, Field: "kind", Message: "unknown account kind"})
		}
		if p.CreditDate.IsZero() {
			issues = append(issues, Issue{Payment: n, Field: "credit_date", Message: "credit date is required"})
		}
	}

	return issues
}
