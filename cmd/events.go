// =============================================================================
// Payroll File Encoder - Events Command
// =============================================================================
//
// This file defines the 'events' command, which builds the eSocial XML
// events for a reporting period from a YAML payload assembled by the
// portal's payroll calculation component.
//
// COMMAND USAGE:
//   payfile events --file eventos.yaml [flags]
//
// PAYLOAD SHAPE (YAML):
//   period: "2026-08"
//   sequence: 1
//   remuneration:
//     - worker_cpf: "123.456.789-00"
//       demonstratives:
//         - id: "DM001"
//           category: "101"
//           establishments:
//             - tax_id: "00.394.460/0001-41"
//               lot: "L001"
//               items:
//                 - { code: "1001", table: "T1", value: "5200.00" }
//   payments:
//     - beneficiary_cpf: "123.456.789-00"
//       entries:
//         - { date: "2026-08-28", kind: "1", demonstrative: "DM001", net: "4730.10" }
//   closing:
//     has_remuneration: true
//     has_payments: true
//
// Each event becomes one standalone XML document in the output directory;
// the structural checker runs over every document and complaints are
// logged, not fatal (the checker is advisory).
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sigrhx/payfile/internal/config"
	"github.com/sigrhx/payfile/internal/esocial"
	"github.com/sigrhx/payfile/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// eventsFile is the YAML event payload to process.
var eventsFile string

// =============================================================================
// EVENTS COMMAND DEFINITION
// =============================================================================

// eventsCmd represents the 'events' command.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Build eSocial XML events from a period payload",
	Long: `The events command reads a YAML payload describing the reporting
period (worker remunerations, beneficiary payments and the closing
declaration) and writes one eSocial XML document per event.

The employer identity and environment come from the configuration file;
the payload carries only the period data.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvents()
	},
}

// init registers the events command and its flags.
func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVar(&eventsFile, "file", "", "YAML event payload (required)")
	eventsCmd.MarkFlagRequired("file")
}

// =============================================================================
// PAYLOAD STRUCTURES
// =============================================================================

// eventPayload is the YAML document handed over by the portal. Monetary
// values travel as strings and are parsed through decimal, never float.
type eventPayload struct {
	Period   string `yaml:"period"`
	Sequence int    `yaml:"sequence"`

	Remuneration []remunerationPayload `yaml:"remuneration"`
	Payments     []paymentPayload      `yaml:"payments"`
	Closing      *closingPayload       `yaml:"closing"`
}

type remunerationPayload struct {
	WorkerCPF      string                 `yaml:"worker_cpf"`
	Demonstratives []demonstrativePayload `yaml:"demonstratives"`
}

type demonstrativePayload struct {
	ID             string                 `yaml:"id"`
	Category       string                 `yaml:"category"`
	Establishments []establishmentPayload `yaml:"establishments"`
}

type establishmentPayload struct {
	TaxID string        `yaml:"tax_id"`
	Lot   string        `yaml:"lot"`
	Items []itemPayload `yaml:"items"`
}

type itemPayload struct {
	Code         string `yaml:"code"`
	Table        string `yaml:"table"`
	Quantity     string `yaml:"quantity"`
	Factor       string `yaml:"factor"`
	UnitValue    string `yaml:"unit_value"`
	Value        string `yaml:"value"`
	TaxTreatment string `yaml:"tax_treatment"`
}

type paymentPayload struct {
	BeneficiaryCPF string         `yaml:"beneficiary_cpf"`
	Entries        []entryPayload `yaml:"entries"`
}

type entryPayload struct {
	Date            string `yaml:"date"`
	Kind            string `yaml:"kind"`
	ReferencePeriod string `yaml:"reference_period"`
	Demonstrative   string `yaml:"demonstrative"`
	Net             string `yaml:"net"`
}

type closingPayload struct {
	HasRemuneration      bool   `yaml:"has_remuneration"`
	HasPayments          bool   `yaml:"has_payments"`
	HasCommercialization bool   `yaml:"has_commercialization"`
	HasCasualWorkers     bool   `yaml:"has_casual_workers"`
	HasComplementaryInfo bool   `yaml:"has_complementary_info"`
	Excludes1250         bool   `yaml:"excludes_1250"`
	NoMovementSince      string `yaml:"no_movement_since"`
}

// =============================================================================
// PIPELINE
// =============================================================================

// runEvents executes the event-building pipeline.
func runEvents() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	data, err := os.ReadFile(eventsFile)
	if err != nil {
		return fmt.Errorf("failed to read event payload: %w", err)
	}

	var payload eventPayload
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to parse event payload: %w", err)
	}
	if payload.Period == "" {
		return fmt.Errorf("event payload has no period")
	}

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir, cfg.OutputNameFormat)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	header := esocial.EventHeader{
		Rectification: 1,
		Period:        payload.Period,
		Environment:   cfg.ESocial.Environment,
		EmissionProc:  1,
		ProcVersion:   cfg.ESocial.ProcVersion,
	}
	employer := esocial.Employer{
		TaxIDKind: cfg.ESocial.EmployerTaxIDKind,
		TaxID:     cfg.ESocial.EmployerTaxID,
	}

	builder := esocial.NewBuilder()
	seq := payload.Sequence
	if seq == 0 {
		seq = 1
	}

	var docs []string
	for _, r := range payload.Remuneration {
		ev, err := buildRemuneration(header, employer, r)
		if err != nil {
			return err
		}
		docs = append(docs, builder.Remuneration(ev, seq))
		seq++
	}
	for _, p := range payload.Payments {
		ev, err := buildPayments(header, employer, p)
		if err != nil {
			return err
		}
		docs = append(docs, builder.Payments(ev, seq))
		seq++
	}
	if payload.Closing != nil {
		docs = append(docs, builder.Closing(buildClosing(header, employer, *payload.Closing), seq))
	}

	if len(docs) == 0 {
		log.Warnf("payload %s produced no events", eventsFile)
		return nil
	}

	for i, doc := range docs {
		writeEventDoc(fm, log, doc, i+1)
	}

	log.Infof("built %d events for period %s", len(docs), payload.Period)
	return nil
}

// writeEventDoc writes one event document and logs checker complaints.
func writeEventDoc(fm *utils.FileManager, log *zap.SugaredLogger, doc string, n int) {
	for _, problem := range esocial.Check(doc) {
		log.Warnf("event %d: structural check: %s", n, problem)
	}

	name := fmt.Sprintf("evento_%03d_%s.xml", n, time.Now().Format("20060102"))
	path, err := fm.WriteOutput(name, []byte(doc))
	if err != nil {
		log.Errorf("event %d: %v", n, err)
		return
	}
	log.Debugf("wrote event %d to %s", n, path)
}

// =============================================================================
// PAYLOAD CONVERSION
// =============================================================================

// buildRemuneration converts one remuneration payload into the event type.
func buildRemuneration(h esocial.EventHeader, emp esocial.Employer, p remunerationPayload) (esocial.RemunerationEvent, error) {
	ev := esocial.RemunerationEvent{Header: h, Employer: emp, WorkerTaxID: p.WorkerCPF}

	for _, dm := range p.Demonstratives {
		d := esocial.Demonstrative{ID: dm.ID, Category: dm.Category}
		for _, est := range dm.Establishments {
			e := esocial.Establishment{TaxIDKind: emp.TaxIDKind, TaxID: est.TaxID, Lot: est.Lot}
			for _, it := range est.Items {
				item, err := buildItem(it)
				if err != nil {
					return ev, fmt.Errorf("worker %s: %w", p.WorkerCPF, err)
				}
				e.Items = append(e.Items, item)
			}
			d.Establishments = append(d.Establishments, e)
		}
		ev.Demonstratives = append(ev.Demonstratives, d)
	}

	return ev, nil
}

// buildItem converts one rubric entry, parsing its monetary fields.
func buildItem(p itemPayload) (esocial.LineItem, error) {
	item := esocial.LineItem{Code: p.Code, TableID: p.Table, TaxTreatment: p.TaxTreatment}

	var err error
	if item.Value, err = parseDecimal(p.Value, "value"); err != nil {
		return item, err
	}
	if item.Quantity, err = parseOptionalDecimal(p.Quantity, "quantity"); err != nil {
		return item, err
	}
	if item.Factor, err = parseOptionalDecimal(p.Factor, "factor"); err != nil {
		return item, err
	}
	if item.UnitValue, err = parseOptionalDecimal(p.UnitValue, "unit_value"); err != nil {
		return item, err
	}

	return item, nil
}

// buildPayments converts one payment payload into the event type.
func buildPayments(h esocial.EventHeader, emp esocial.Employer, p paymentPayload) (esocial.PaymentEvent, error) {
	ev := esocial.PaymentEvent{Header: h, Employer: emp, BeneficiaryTaxID: p.BeneficiaryCPF}

	for _, e := range p.Entries {
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return ev, fmt.Errorf("beneficiary %s: bad payment date %q: %w", p.BeneficiaryCPF, e.Date, err)
		}
		net, err := parseDecimal(e.Net, "net")
		if err != nil {
			return ev, fmt.Errorf("beneficiary %s: %w", p.BeneficiaryCPF, err)
		}
		ev.Payments = append(ev.Payments, esocial.PaymentDetail{
			Date:            date,
			Kind:            e.Kind,
			ReferencePeriod: e.ReferencePeriod,
			DemonstrativeID: e.Demonstrative,
			NetValue:        net,
		})
	}

	return ev, nil
}

// buildClosing converts the closing payload into the event type.
func buildClosing(h esocial.EventHeader, emp esocial.Employer, p closingPayload) esocial.ClosingEvent {
	return esocial.ClosingEvent{
		Header:               h,
		Employer:             emp,
		HasRemuneration:      p.HasRemuneration,
		HasPayments:          p.HasPayments,
		HasCommercialization: p.HasCommercialization,
		HasCasualWorkers:     p.HasCasualWorkers,
		HasComplementaryInfo: p.HasComplementaryInfo,
		Excludes1250:         p.Excludes1250,
		NoMovementSince:      p.NoMovementSince,
	}
}

// parseDecimal parses a required monetary field.
func parseDecimal(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("field %s is required", field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("field %s: %w", field, err)
	}
	return d, nil
}

// parseOptionalDecimal parses a monetary field that may be absent.
func parseOptionalDecimal(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return parseDecimal(s, field)
}
