package http

import (
	"bytes"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tabi/internal/core"
)

// ledgerView is the template model for the ledger fragment.
type ledgerView struct {
	Rate       string
	Total      string
	Paid       string
	Pending    string
	Count      int
	Rows       []ledgerRow
	Breakdown  []breakdownRow
	Categories []core.Category
}

type ledgerRow struct {
	ID       string
	Title    string
	Category string
	Paid     bool
	Date     string
	Amount   string
	RateNote string
	Home     string
}

type breakdownRow struct {
	Name   string
	Amount string
	Width  int
}

func (s *Server) buildLedgerView() ledgerView {
	items := s.store.Sorted()
	totals := s.store.Totals()
	breakdown := s.store.Breakdown()

	view := ledgerView{
		Rate:       s.store.Rate().String(),
		Total:      homeAmount(totals.Total),
		Paid:       homeAmount(totals.Paid),
		Pending:    homeAmount(totals.Pending),
		Count:      len(items),
		Categories: core.Categories(),
	}

	for _, e := range items {
		row := ledgerRow{
			ID:       e.ID.String(),
			Title:    e.Title,
			Category: string(e.Category),
			Paid:     e.Paid,
			Date:     e.Date,
			Home:     homeAmount(e.HomeValue()),
		}
		switch e.Currency {
		case core.TWD:
			row.Amount = "NT$" + groupDigits(strconv.FormatInt(e.Amount, 10))
		default:
			row.Amount = "¥" + groupDigits(strconv.FormatInt(e.Amount, 10))
			row.RateNote = "@" + e.Rate.String()
		}
		view.Rows = append(view.Rows, row)
	}

	max := breakdown.Max()
	for _, cat := range core.Categories() {
		v, ok := breakdown[cat]
		if !ok || v.Sign() == 0 {
			continue
		}
		width := int(v.Div(max).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		view.Breakdown = append(view.Breakdown, breakdownRow{
			Name:   string(cat),
			Amount: homeAmount(v),
			Width:  width,
		})
	}

	return view
}

// renderLedger writes the ledger fragment, serving from cache when the
// ledger has not changed since the last render.
func (s *Server) renderLedger(w io.Writer) error {
	if body, ok := s.ledgerCache.Get(ledgerCacheKey); ok {
		_, err := w.Write(body)
		return err
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "ledger", s.buildLedgerView()); err != nil {
		return err
	}
	s.ledgerCache.Set(ledgerCacheKey, buf.Bytes())
	_, err := w.Write(buf.Bytes())
	return err
}

// homeAmount formats a home-currency value like "NT$21,279".
func homeAmount(v decimal.Decimal) string {
	s := core.FormatHome(v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	s = "NT$" + groupDigits(s)
	if neg {
		s = "-" + s
	}
	return s
}

// groupDigits inserts thousands separators into a digit string.
func groupDigits(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"groupDigits": groupDigits,
	}
}
