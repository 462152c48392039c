// Package report renders classifier results as console tables.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/victortelles/ClasificadorBayesiano/internal/data"
	"github.com/victortelles/ClasificadorBayesiano/internal/evaluation"
	"github.com/victortelles/ClasificadorBayesiano/internal/models"
	"github.com/victortelles/ClasificadorBayesiano/internal/preprocessing"
)

type Printer struct {
	w      io.Writer
	cyan   func(a ...any) string
	green  func(a ...any) string
	yellow func(a ...any) string
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		cyan:   color.New(color.FgCyan, color.Bold).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
	}
}

// newTable keeps header and footer text as written.
func newTable() table.Writer {
	t := table.NewWriter()
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func (p *Printer) heading(title string) {
	fmt.Fprintf(p.w, "\n%s\n", p.cyan("=== "+title+" ==="))
}

func (p *Printer) Priors(m *models.ProbabilityModel) {
	p.heading("PRIOR PROBABILITIES P(C)")
	fmt.Fprintln(p.w, PriorsTable(m))
}

func PriorsTable(m *models.ProbabilityModel) string {
	t := newTable()
	t.AppendHeader(table.Row{"Class", "Count", "P(C)", "%"})
	counts := m.Counts()
	for _, class := range m.Classes() {
		prior := m.Prior(class)
		t.AppendRow(table.Row{
			class,
			fmt.Sprintf("%d/%d", counts[class], m.TrainingSize()),
			fmt.Sprintf("%.4f", prior),
			fmt.Sprintf("%.1f", prior*100),
		})
	}
	return t.Render()
}

func (p *Printer) Joint(m *models.ProbabilityModel) {
	p.heading("JOINT PROBABILITIES P(Age_bin, Income_bin | C)")
	for _, class := range m.Classes() {
		fmt.Fprintf(p.w, "\n--- Class: %s ---\n", class)
		fmt.Fprintln(p.w, JointTable(m, class))
	}
}

// JointTable shows one class's smoothed table with age bins as rows.
func JointTable(m *models.ProbabilityModel, class string) string {
	t := newTable()
	header := table.Row{"Age_bin \\ Income_bin"}
	for j := 0; j < m.IncomeBins(); j++ {
		header = append(header, j)
	}
	t.AppendHeader(header)

	n := m.Counts()[class]
	k := m.Combinations()
	for i := 0; i < m.AgeBins(); i++ {
		row := table.Row{i}
		for j := 0; j < m.IncomeBins(); j++ {
			row = append(row, fmt.Sprintf("(%d+1)/(%d+%d) = %.4f", m.Frequency(i, j, class), n, k, m.JointProbability(i, j, class)))
		}
		t.AppendRow(row)
	}
	return t.Render()
}

func (p *Printer) Evidence(b models.EvidenceBreakdown) {
	p.heading(fmt.Sprintf("EVIDENCE P(x) FOR (Age_bin=%d, Income_bin=%d)", b.AgeBin, b.IncomeBin))
	fmt.Fprintln(p.w, EvidenceTable(b))
}

func EvidenceTable(b models.EvidenceBreakdown) string {
	t := newTable()
	t.AppendHeader(table.Row{"Class", "P(x|C)", "freq/n_c", "P(C)", "P(x|C)*P(C)", "P(C|x)"})
	for _, term := range b.Terms {
		t.AppendRow(table.Row{
			term.Class,
			fmt.Sprintf("%.4f", term.Likelihood),
			fmt.Sprintf("%.4f", term.Frequency),
			fmt.Sprintf("%.4f", term.Prior),
			fmt.Sprintf("%.4f", term.Product),
			fmt.Sprintf("%.4f", term.Posterior),
		})
	}
	t.AppendFooter(table.Row{"P(x)", "", "", "", fmt.Sprintf("%.4f", b.Evidence), ""})
	return t.Render()
}

func (p *Printer) Prediction(class string, probability float64) {
	if class == "" {
		fmt.Fprintf(p.w, "%s model is not fitted, no prediction\n", p.yellow("⚠"))
		return
	}
	fmt.Fprintf(p.w, "%s Predicted class: %s with probability %.4f\n", p.green("✓"), class, probability)
}

func (p *Printer) Confusion(cm *evaluation.ConfusionMatrix) {
	p.heading("CONFUSION MATRIX")
	fmt.Fprintln(p.w, ConfusionTable(cm))
	fmt.Fprintf(p.w, "Accuracy: %.2f\n", evaluation.Accuracy(cm))
}

func ConfusionTable(cm *evaluation.ConfusionMatrix) string {
	t := newTable()
	header := table.Row{""}
	for _, label := range cm.Labels {
		header = append(header, "Predicted: "+label)
	}
	t.AppendHeader(header)
	for i, label := range cm.Labels {
		row := table.Row{"Actual: " + label}
		for _, count := range cm.Counts[i] {
			row = append(row, count)
		}
		t.AppendRow(row)
	}
	return t.Render()
}

func (p *Printer) Metrics(m *evaluation.ClassificationMetrics) {
	p.heading("METRICS")
	t := newTable()
	t.AppendHeader(table.Row{"Class", "TP", "FN", "TN", "FP", "Sensitivity", "Specificity", "Precision", "F1-Score", "Support"})
	for _, class := range m.Classes {
		c := m.PerClassMetrics[class]
		t.AppendRow(table.Row{
			class, c.Outcome.TP, c.Outcome.FN, c.Outcome.TN, c.Outcome.FP,
			fmt.Sprintf("%.4f", c.Recall),
			fmt.Sprintf("%.4f", c.Specificity),
			fmt.Sprintf("%.4f", c.Precision),
			fmt.Sprintf("%.4f", c.F1Score),
			c.Support,
		})
	}
	fmt.Fprintln(p.w, t.Render())
	fmt.Fprintf(p.w, "Balanced accuracy: %.4f\n", m.BalancedAccuracy)
}

func (p *Printer) Bins(d *preprocessing.Discretizer, stats preprocessing.BinStats) {
	p.heading("BINNING")
	t := newTable()
	t.AppendHeader(table.Row{"Feature", "Bin", "Range", "Name", "Count", "%"})
	for _, desc := range d.Describe() {
		count := stats.AgeCounts
		if desc.Feature == preprocessing.FeatureIncome {
			count = stats.IncomeCounts
		}
		share := 0.0
		if stats.Total > 0 {
			share = float64(count[desc.Index]) / float64(stats.Total) * 100
		}
		lower := "("
		if desc.Index == 0 {
			lower = "["
		}
		t.AppendRow(table.Row{
			desc.Feature.String(),
			desc.Index,
			fmt.Sprintf("%s%s, %s]", lower, desc.Lower, desc.Upper),
			desc.Name,
			count[desc.Index],
			fmt.Sprintf("%.1f", share),
		})
	}
	fmt.Fprintln(p.w, t.Render())

	fmt.Fprintf(p.w, "\n%s\n", "Age_bin vs Income_bin")
	fmt.Fprintln(p.w, CrosstabTable(stats))
}

func CrosstabTable(stats preprocessing.BinStats) string {
	t := newTable()
	header := table.Row{"Age_bin"}
	if len(stats.Crosstab) > 0 {
		for j := range stats.Crosstab[0] {
			header = append(header, j)
		}
	}
	t.AppendHeader(header)
	for i, counts := range stats.Crosstab {
		row := table.Row{i}
		for _, c := range counts {
			row = append(row, c)
		}
		t.AppendRow(row)
	}
	return t.Render()
}

func (p *Printer) Dataset(stats data.DatasetStats) {
	p.heading("DATASET")
	fmt.Fprintf(p.w, "Samples: %d  Classes: %d\n", stats.Samples, stats.Classes)

	classes := lo.Keys(stats.ClassDistribution)
	sort.Strings(classes)
	for _, class := range classes {
		count := stats.ClassDistribution[class]
		fmt.Fprintf(p.w, "  %s: %d (%.1f%%)\n", class, count, 100*float64(count)/float64(stats.Samples))
	}

	if stats.Samples > 0 {
		fmt.Fprintln(p.w, DatasetTable(stats))
	}
}

func DatasetTable(stats data.DatasetStats) string {
	t := newTable()
	t.AppendHeader(table.Row{"Feature", "Min", "Max", "Mean"})
	for _, f := range []struct {
		name  string
		stats data.FeatureStats
	}{{"Age", stats.Age}, {"Income", stats.Income}} {
		t.AppendRow(table.Row{f.name, f.stats.Min.String(), f.stats.Max.String(), f.stats.Mean.StringFixed(2)})
	}
	return t.Render()
}
