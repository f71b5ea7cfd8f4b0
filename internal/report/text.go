package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"go-image-metrics/pkg/models"
)

// TextReporter prints one line per item followed by a summary block
type TextReporter struct{}

func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

func (r *TextReporter) Format() string { return "text" }

func (r *TextReporter) WriteBatch(w io.Writer, rep *models.BatchReport) error {
	p := &printer{w: w}
	p.printf("Full-reference evaluation\n")
	p.printf("  reference: %s\n  processed: %s\n\n", rep.ReferenceDir, rep.ProcessedDir)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	tp := &printer{w: tw}
	for _, item := range rep.Items {
		switch item.Status {
		case models.StatusScored:
			rec := item.Record
			tp.printf("%s\tPCQI=%.4f\tAG(ref)=%.4f\tAG(proc)=%.4f\tEI(ref)=%.4f\tEI(proc)=%.4f\n",
				item.Filename, *rec.PCQI, rec.AGRef, rec.AGDist, rec.EIRef, rec.EIDist)
		default:
			tp.printf("%s\t%s\n", item.Filename, outcome(item.Status, item.Message))
		}
	}
	if tp.err == nil {
		tp.err = tw.Flush()
	}
	if tp.err != nil {
		return tp.err
	}

	s := rep.Summary
	p.printf("\nSummary\n")
	p.printf("  items: %d total, %d scored, %d skipped, %d failed, %d invalid\n",
		s.Total, s.Scored, s.Skipped, s.Failed, s.Invalid)
	if s.Empty {
		p.printf("  no valid results, nothing to aggregate\n")
	} else {
		p.printf("  mean PCQI: %.4f\n", s.MeanPCQI)
		p.printf("  mean AG:   ref %.4f, processed %.4f (%s)\n", s.MeanAGRef, s.MeanAGDist, change(s.AGChangePct))
		p.printf("  mean EI:   ref %.4f, processed %.4f (%s)\n", s.MeanEIRef, s.MeanEIDist, change(s.EIChangePct))
	}
	p.printf("Total time: %.2fs\n", rep.Elapsed.Seconds())
	return p.err
}

func (r *TextReporter) WriteNoReference(w io.Writer, rep *models.NoReferenceReport) error {
	p := &printer{w: w}
	p.printf("No-reference evaluation (%s)\n  folder: %s\n\n", rep.Metric, rep.Dir)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	tp := &printer{w: tw}
	for _, item := range rep.Items {
		if item.Status == models.StatusScored {
			tp.printf("%s\t%s=%.4f\n", item.Filename, rep.Metric, *item.Score)
			continue
		}
		tp.printf("%s\t%s\n", item.Filename, outcome(item.Status, item.Message))
	}
	if tp.err == nil {
		tp.err = tw.Flush()
	}
	if tp.err != nil {
		return tp.err
	}

	s := rep.Summary
	p.printf("\nSummary\n")
	p.printf("  succeeded: %d/%d\n", s.Succeeded, s.Total)
	if s.Empty {
		p.printf("  no valid results, nothing to aggregate\n")
	} else {
		p.printf("  mean %s: %.4f\n", rep.Metric, s.Mean)
		p.printf("  best:  %s (%.4f)\n", s.Best.Filename, s.Best.Score)
		p.printf("  worst: %s (%.4f)\n", s.Worst.Filename, s.Worst.Score)
	}
	p.printf("Total time: %.2fs\n", rep.Elapsed.Seconds())
	return p.err
}

func outcome(status models.ItemStatus, message string) string {
	var label string
	switch status {
	case models.StatusMissingPair:
		label = "skipped: not found"
	case models.StatusDecodeFailed:
		label = "skipped: decode failed"
	case models.StatusInvalid:
		label = "invalid"
	default:
		label = "failed"
	}
	if message == "" {
		return label
	}
	return label + ": " + message
}

func change(pct *float64) string {
	switch {
	case pct == nil:
		return "change n/a"
	case *pct >= 0:
		return fmt.Sprintf("increase %.2f%%", *pct)
	default:
		return fmt.Sprintf("decrease %.2f%%", math.Abs(*pct))
	}
}

// printer keeps the first write error so callers check once
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
