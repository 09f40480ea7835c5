// =============================================================================
// Payroll File Encoder - eSocial Event Types
// =============================================================================
//
// Value objects for the three compliance events the portal reports:
//   - Remuneration (evtRemun): what each worker earned in the period
//   - Payments (evtPgtos): what was actually paid to each beneficiary
//   - Period closing (evtFechaEvPer): declaration that the period is done
//
// These are built from portal data for the duration of one build call and
// never mutated. Optional decimal fields use the zero value as "absent";
// the assemblers omit the corresponding elements.
//
// =============================================================================

package esocial

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax-ID kinds used by ideEmpregador and ideEstabLot.
const (
	TaxIDCNPJ = 1
	TaxIDCPF  = 2
)

// Environment flags for ideEvento/tpAmb.
const (
	EnvProduction    = 1
	EnvPreProduction = 2
)

// =============================================================================
// COMMON BLOCKS
// =============================================================================

// EventHeader carries the ideEvento block shared by the event kinds.
// The closing event uses a reduced form without the rectification fields.
type EventHeader struct {
	// Rectification is 1 for an original submission, 2 for a re-submission.
	Rectification int

	// ReceiptNumber is the receipt of the original event; only meaningful
	// when Rectification is 2.
	ReceiptNumber string

	// Period is the reporting period (perApur), formatted AAAA-MM.
	Period string

	// Environment is EnvProduction or EnvPreProduction.
	Environment int

	// EmissionProc identifies the emission channel (procEmi); 1 means the
	// employer's own application.
	EmissionProc int

	// ProcVersion is the emitting application version (verProc).
	ProcVersion string
}

// Employer is the ideEmpregador block.
type Employer struct {
	// TaxIDKind is TaxIDCNPJ or TaxIDCPF.
	TaxIDKind int

	// TaxID is the employer tax ID; punctuation is tolerated.
	TaxID string
}

// =============================================================================
// REMUNERATION EVENT
// =============================================================================

// RemunerationEvent reports a worker's payroll breakdown for the period.
type RemunerationEvent struct {
	Header   EventHeader
	Employer Employer

	// WorkerTaxID is the worker's CPF.
	WorkerTaxID string

	Demonstratives []Demonstrative
}

// Demonstrative is one dmDev group: a payroll demonstrative with its
// category and per-establishment breakdowns.
type Demonstrative struct {
	// ID is the demonstrative identifier (ideDmDev).
	ID string

	// Category is the worker category code (codCateg).
	Category string

	Establishments []Establishment
}

// Establishment is one ideEstabLot group holding the line items accrued at
// that establishment.
type Establishment struct {
	TaxIDKind int
	TaxID     string

	// Lot is the lotação tributária code (codLotacao).
	Lot string

	Items []LineItem
}

// LineItem is a single payroll rubric entry (detVerbas).
type LineItem struct {
	// Code is the rubric code (codRubr).
	Code string

	// TableID identifies the rubric table (ideTabRubr).
	TableID string

	// Quantity, Factor and UnitValue are optional; zero means absent.
	Quantity  decimal.Decimal
	Factor    decimal.Decimal
	UnitValue decimal.Decimal

	// Value is the final rubric value (vrRubr), always present.
	Value decimal.Decimal

	// TaxTreatment is the optional income-tax treatment flag (indApurIR);
	// empty means absent.
	TaxTreatment string
}

// =============================================================================
// PAYMENT EVENT
// =============================================================================

// PaymentEvent reports the payments actually made to one beneficiary.
type PaymentEvent struct {
	Header   EventHeader
	Employer Employer

	// BeneficiaryTaxID is the beneficiary's CPF.
	BeneficiaryTaxID string

	Payments []PaymentDetail
}

// PaymentDetail is one infoPgto entry.
type PaymentDetail struct {
	// Date is the payment date (dtPgto).
	Date time.Time

	// Kind is the payment-kind code (tpPgto).
	Kind string

	// ReferencePeriod is the optional perRef, formatted AAAA-MM.
	ReferencePeriod string

	// DemonstrativeID links the payment to its dmDev (ideDmDev).
	DemonstrativeID string

	// NetValue is the net amount paid (vrLiq).
	NetValue decimal.Decimal
}

// =============================================================================
// PERIOD-CLOSING EVENT
// =============================================================================

// ClosingEvent declares the period closed. Its header is reduced: the
// rectification fields of EventHeader are not emitted for this kind.
type ClosingEvent struct {
	Header   EventHeader
	Employer Employer

	// The six closing flags, rendered as "S"/"N".
	HasRemuneration      bool // evtRemun
	HasPayments          bool // evtPgtos
	HasCommercialization bool // evtComProd
	HasCasualWorkers     bool // evtContratAvNP
	HasComplementaryInfo bool // evtInfoComplPer
	Excludes1250         bool // indExcApur1250

	// NoMovementSince is the optional first competence without movement
	// (compSemMovto), formatted AAAA-MM; empty means omitted.
	NoMovementSince string
}
