// =============================================================================
// Payroll File Encoder - eSocial Event Builders
// =============================================================================
//
// One assembly function per event kind. Each returns a complete, standalone
// UTF-8 XML document: prolog, namespaced eSocial root, and the event element
// carrying the Id attribute.
//
// EVENT IDENTIFIERS:
//   Id = "ID" + tax-ID kind digit + 14-digit tax ID + yyyymmddhhmmss +
//   5-digit caller sequence (36 characters). The timestamp comes from the
//   builder's clock, which callers inject when they need reproducible
//   output; the wall clock is only the default. Two calls within the same
//   second with the same sequence collide, so callers paying attention to
//   uniqueness advance the sequence.
//
// =============================================================================

package esocial

import (
	"fmt"
	"time"

	"github.com/sigrhx/payfile/internal/format"
)

// namespaceBase prefixes the per-kind schema namespaces.
const namespaceBase = "http://www.esocial.gov.br/schema/evt/"

// schemaVersion is the layout version segment of the namespaces.
const schemaVersion = "v_S_01_00_00"

// =============================================================================
// CLOCK INJECTION
// =============================================================================

// Clock supplies the timestamp used in event identifiers.
type Clock interface {
	Now() time.Time
}

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Builder assembles event documents. The zero value is not usable; use one
// of the constructors.
type Builder struct {
	clock Clock
}

// NewBuilder returns a builder on the system clock.
func NewBuilder() *Builder {
	return &Builder{clock: systemClock{}}
}

// NewBuilderWithClock returns a builder on an injected clock, for callers
// that need deterministic identifiers.
func NewBuilderWithClock(c Clock) *Builder {
	return &Builder{clock: c}
}

// eventID composes the Id attribute for an event emitted by the employer.
func (b *Builder) eventID(emp Employer, seq int) string {
	return fmt.Sprintf("ID%d%s%s%05d",
		emp.TaxIDKind,
		format.PadLeft(format.Digits(emp.TaxID), 14, '0'),
		b.clock.Now().Format("20060102150405"),
		seq,
	)
}

// =============================================================================
// SHARED BLOCKS
// =============================================================================

// ideEvento renders the full event header. Rectification defaults to 1
// (original) when unset; the receipt number is only emitted for
// re-submissions.
func ideEvento(h EventHeader) Element {
	rectification := h.Rectification
	if rectification == 0 {
		rectification = 1
	}

	children := []Element{elem("indRetif", rectification)}
	if rectification == 2 && h.ReceiptNumber != "" {
		children = append(children, elem("nrRecibo", h.ReceiptNumber))
	}
	children = append(children,
		elem("perApur", h.Period),
		elem("tpAmb", h.Environment),
		elem("procEmi", h.EmissionProc),
		elem("verProc", h.ProcVersion),
	)
	return elem("ideEvento", children)
}

// ideEventoReduced renders the closing-event header, which carries no
// rectification fields.
func ideEventoReduced(h EventHeader) Element {
	return elem("ideEvento", []Element{
		elem("perApur", h.Period),
		elem("tpAmb", h.Environment),
		elem("procEmi", h.EmissionProc),
		elem("verProc", h.ProcVersion),
	})
}

// ideEmpregador renders the employer identification block.
func ideEmpregador(e Employer) Element {
	return elem("ideEmpregador", []Element{
		elem("tpInsc", e.TaxIDKind),
		elem("nrInsc", format.Digits(e.TaxID)),
	})
}

// document wraps an event element in the namespaced root, prefixed by the
// XML declaration.
func document(kind string, event Element) string {
	root := Element{
		Name: "eSocial",
		Attrs: []Attr{
			{Name: "xmlns", Value: namespaceBase + kind + "/" + schemaVersion},
		},
		Children: []Element{event},
	}
	return Declaration + render(root)
}

// =============================================================================
// REMUNERATION EVENT (evtRemun)
// =============================================================================

// Remuneration builds the worker remuneration event. seq is the caller's
// event sequence number for the identifier.
func (b *Builder) Remuneration(ev RemunerationEvent, seq int) string {
	children := []Element{
		ideEvento(ev.Header),
		ideEmpregador(ev.Employer),
		elem("ideTrabalhador", []Element{
			elem("cpfTrab", format.Digits(ev.WorkerTaxID)),
		}),
	}

	for _, dm := range ev.Demonstratives {
		children = append(children, demonstrative(dm))
	}

	event := Element{
		Name:     "evtRemun",
		Attrs:    []Attr{{Name: "Id", Value: b.eventID(ev.Employer, seq)}},
		Children: children,
	}
	return document("evtRemun", event)
}

// demonstrative renders one dmDev group with its establishments.
func demonstrative(dm Demonstrative) Element {
	children := []Element{
		elem("ideDmDev", dm.ID),
		elem("codCateg", dm.Category),
	}

	if len(dm.Establishments) > 0 {
		var estabs []Element
		for _, est := range dm.Establishments {
			estabs = append(estabs, establishment(est))
		}
		children = append(children, elem("infoPerApur", estabs))
	}

	return elem("dmDev", children)
}

// establishment renders one ideEstabLot group with its rubric items.
func establishment(est Establishment) Element {
	children := []Element{
		elem("tpInsc", est.TaxIDKind),
		elem("nrInsc", format.Digits(est.TaxID)),
	}
	if est.Lot != "" {
		children = append(children, elem("codLotacao", est.Lot))
	}

	var items []Element
	for _, it := range est.Items {
		items = append(items, lineItem(it))
	}
	children = append(children, elem("remunPerApur", items))

	return elem("ideEstabLot", children)
}

// lineItem renders one detVerbas rubric entry in declaration order; the
// optional quantity/factor/unit-value triple is omitted when zero.
func lineItem(it LineItem) Element {
	children := []Element{
		elem("codRubr", it.Code),
		elem("ideTabRubr", it.TableID),
	}
	if !it.Quantity.IsZero() {
		children = append(children, elem("qtdRubr", it.Quantity))
	}
	if !it.Factor.IsZero() {
		children = append(children, elem("fatorRubr", it.Factor))
	}
	if !it.UnitValue.IsZero() {
		children = append(children, elem("vrUnit", it.UnitValue))
	}
	children = append(children, elem("vrRubr", it.Value))
	if it.TaxTreatment != "" {
		children = append(children, elem("indApurIR", it.TaxTreatment))
	}
	return elem("detVerbas", children)
}

// =============================================================================
// PAYMENT EVENT (evtPgtos)
// =============================================================================

// Payments builds the beneficiary payment event.
func (b *Builder) Payments(ev PaymentEvent, seq int) string {
	benef := []Element{
		elem("cpfBenef", format.Digits(ev.BeneficiaryTaxID)),
	}
	for _, p := range ev.Payments {
		benef = append(benef, paymentDetail(p))
	}

	event := Element{
		Name:  "evtPgtos",
		Attrs: []Attr{{Name: "Id", Value: b.eventID(ev.Employer, seq)}},
		Children: []Element{
			ideEvento(ev.Header),
			ideEmpregador(ev.Employer),
			elem("ideBenef", benef),
		},
	}
	return document("evtPgtos", event)
}

// paymentDetail renders one infoPgto entry.
func paymentDetail(p PaymentDetail) Element {
	children := []Element{
		elem("dtPgto", p.Date),
		elem("tpPgto", p.Kind),
	}
	if p.ReferencePeriod != "" {
		children = append(children, elem("perRef", p.ReferencePeriod))
	}
	children = append(children,
		elem("ideDmDev", p.DemonstrativeID),
		elem("vrLiq", p.NetValue),
	)
	return elem("infoPgto", children)
}

// =============================================================================
// PERIOD-CLOSING EVENT (evtFechaEvPer)
// =============================================================================

// Closing builds the period-closing declaration.
func (b *Builder) Closing(ev ClosingEvent, seq int) string {
	fech := []Element{
		elem("evtRemun", ev.HasRemuneration),
		elem("evtPgtos", ev.HasPayments),
		elem("evtComProd", ev.HasCommercialization),
		elem("evtContratAvNP", ev.HasCasualWorkers),
		elem("evtInfoComplPer", ev.HasComplementaryInfo),
		elem("indExcApur1250", ev.Excludes1250),
	}
	if ev.NoMovementSince != "" {
		fech = append(fech, elem("compSemMovto", ev.NoMovementSince))
	}

	event := Element{
		Name:  "evtFechaEvPer",
		Attrs: []Attr{{Name: "Id", Value: b.eventID(ev.Employer, seq)}},
		Children: []Element{
			ideEventoReduced(ev.Header),
			ideEmpregador(ev.Employer),
			elem("infoFech", fech),
		},
	}
	return document("evtFechaEvPer", event)
}
