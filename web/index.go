package web

import (
	"html/template"
	"net/http"

	"github.com/etnz/printsales"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Print Sales</title></head>
<body>
<h1>Print Sales Dashboard</h1>
<p>Ledger currency: {{.Symbol}} ({{.Code}}), {{.Sales}} sales, {{.Items}} items.</p>
<h2>Reports</h2>
<ul>
<li><a href="/api/summary">Accounting summary</a></li>
<li><a href="/api/salesonly">Sales only</a></li>
<li><a href="/api/rank">Profit per hour ranking</a></li>
<li><a href="/api/series">Profit over time</a></li>
<li><a href="/api/expenses">Expenses</a></li>
</ul>
<h2>Downloads</h2>
<ul>
<li><a href="/export/sales.csv">sales.csv</a></li>
<li><a href="/export/items.csv">items.csv</a></li>
<li><a href="/export/expenses.csv">expenses.csv</a></li>
<li><a href="/export/series.csv">series.csv</a></li>
</ul>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := s.ledger.Currency()
	data := struct {
		Code, Symbol string
		Sales, Items int
	}{
		Code:   code,
		Symbol: printsales.CurrencySymbol(code),
		Sales:  len(s.ledger.Sales()),
		Items:  len(s.ledger.Items()),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
