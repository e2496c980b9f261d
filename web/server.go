// Package web serves the local dashboard: a JSON API over the ledger plus
// CSV downloads. The ledger is held in memory; an optional persist callback
// is invoked after every successful mutation.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/etnz/printsales"
)

// Server is the dashboard HTTP handler. All access to the ledger is
// serialized by the mutex; the ledger itself is not safe for concurrent use.
type Server struct {
	mu      sync.Mutex
	ledger  *printsales.Ledger
	persist func(*printsales.Ledger) error

	router chi.Router
}

// NewServer creates the dashboard handler around a ledger. persist may be
// nil for an in-memory ledger (the demo mode).
func NewServer(ledger *printsales.Ledger, persist func(*printsales.Ledger) error) *Server {
	s := &Server{ledger: ledger, persist: persist}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/salesonly", s.handleSalesOnly)
		r.Get("/rank", s.handleRank)
		r.Get("/series", s.handleSeries)

		r.Get("/items", s.handleListItems)
		r.Post("/items", s.handleAddItem)
		r.Put("/items/{id}", s.handleEditItem)
		r.Delete("/items/{id}", s.handleToggleItem)

		r.Get("/sales", s.handleListSales)
		r.Post("/sales", s.handleAddSale)
		r.Delete("/sales/{index}", s.handleDeleteSale)

		r.Get("/expenses", s.handleListExpenses)
		r.Post("/expenses", s.handleAddExpense)
		r.Delete("/expenses/{index}", s.handleDeleteExpense)

		r.Get("/channels", s.handleListChannels)
		r.Post("/channels", s.handleAddChannel)

		r.Get("/currency", s.handleGetCurrency)
		r.Put("/currency", s.handleSetCurrency)
	})

	r.Get("/export/{what}.csv", s.handleExport)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// respond writes v as JSON.
func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]string{"error": msg})
}

// saved runs the persist callback after a successful mutation. A persist
// failure is reported but the in-memory mutation stands.
func (s *Server) saved(w http.ResponseWriter) bool {
	if s.persist == nil {
		return true
	}
	if err := s.persist(s.ledger); err != nil {
		log.Printf("persisting ledger: %v", err)
		respondError(w, http.StatusInternalServerError, "cannot persist the ledger: "+err.Error())
		return false
	}
	return true
}

// rangeParams resolves the from/to/last query parameters against the ledger.
func (s *Server) rangeParams(r *http.Request) (printsales.Range, error) {
	q := r.URL.Query()
	if last := q.Get("last"); last != "" {
		n, err := strconv.Atoi(last)
		if err != nil {
			return printsales.Range{}, err
		}
		return s.ledger.RecentRange(n), nil
	}
	rng := s.ledger.SaleRange()
	if from := q.Get("from"); from != "" {
		d, err := printsales.ParseDate(from)
		if err != nil {
			return printsales.Range{}, err
		}
		rng.From = d
	}
	if to := q.Get("to"); to != "" {
		d, err := printsales.ParseDate(to)
		if err != nil {
			return printsales.Range{}, err
		}
		rng.To = d
	}
	return printsales.NewRange(rng.From, rng.To), nil
}

// boolParam reads a query flag that defaults to true.
func boolParam(r *http.Request, name string) bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	respond(w, http.StatusOK, struct {
		Totals   printsales.AccountingTotals `json:"totals"`
		Filament printsales.FilamentTotals   `json:"filament"`
	}{
		Totals:   printsales.NewAccountingTotals(s.ledger),
		Filament: printsales.NewFilamentTotals(s.ledger),
	})
}

func (s *Server) handleSalesOnly(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rng, err := s.rangeParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	report := printsales.NewSalesOnly(s.ledger, rng, boolParam(r, "cash"))
	respond(w, http.StatusOK, struct {
		printsales.SalesOnly
		Comparison []printsales.ComparisonRow `json:"comparison"`
	}{SalesOnly: report, Comparison: report.Comparison()})
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	respond(w, http.StatusOK, printsales.NewRanking(s.ledger))
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rng, err := s.rangeParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	points := printsales.NewTimeSeries(s.ledger, rng, boolParam(r, "cash"))
	respond(w, http.StatusOK, struct {
		Range  printsales.Range         `json:"range"`
		Points []printsales.SeriesPoint `json:"points"`
	}{Range: rng, Points: points})
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if boolParam(r, "all") {
		respond(w, http.StatusOK, s.ledger.Items())
		return
	}
	respond(w, http.StatusOK, s.ledger.ActiveItems())
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var draft printsales.ItemDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ledger.AddItem(draft) {
		respondError(w, http.StatusBadRequest, "item name is required")
		return
	}
	if !s.saved(w) {
		return
	}
	items := s.ledger.Items()
	respond(w, http.StatusCreated, items[len(items)-1])
}

func (s *Server) handleEditItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	field, ok := printsales.ParseItemField(body.Field)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown field "+strconv.Quote(body.Field))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ledger.EditItem(id, field, body.Value) {
		respondError(w, http.StatusNotFound, "no such item")
		return
	}
	if !s.saved(w) {
		return
	}
	respond(w, http.StatusOK, s.ledger.Item(id))
}

func (s *Server) handleToggleItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ledger.ToggleRemoved(id) {
		respondError(w, http.StatusNotFound, "no such item")
		return
	}
	if !s.saved(w) {
		return
	}
	respond(w, http.StatusOK, s.ledger.Item(id))
}

func (s *Server) handleListSales(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	respond(w, http.StatusOK, s.ledger.Sales())
}

func (s *Server) handleAddSale(w http.ResponseWriter, r *http.Request) {
	var body struct {
		printsales.SaleDraft
		DeliveryCost string `json:"deliveryCost"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.AddChannel(body.Channel)
	if !s.ledger.AddSale(body.SaleDraft, body.DeliveryCost) {
		respondError(w, http.StatusBadRequest, "unknown item or missing price")
		return
	}
	if !s.saved(w) {
		return
	}
	sales := s.ledger.Sales()
	respond(w, http.StatusCreated, sales[len(sales)-1])
}

func (s *Server) handleDeleteSale(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid index")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ledger.DeleteSale(i) {
		respondError(w, http.StatusNotFound, "no sale at this index")
		return
	}
	if !s.saved(w) {
		return
	}
	respond(w, http.StatusOK, map[string]int{"deleted": i})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	showCOGS := boolParam(r, "cogs")
	respond(w, http.StatusOK, struct {
		Expenses  []printsales.Expense       `json:"expenses"`
		Breakdown []printsales.CategoryTotal `json:"breakdown"`
	}{
		Expenses:  s.ledger.FilterExpenses(showCOGS),
		Breakdown: printsales.NewExpenseBreakdown(s.ledger, showCOGS),
	})
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var draft printsales.ExpenseDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ledger.AddExpense(draft) {
		respondError(w, http.StatusBadRequest, "description and cost are required")
		return
	}
	if !s.saved(w) {
		return
	}
	expenses := s.ledger.Expenses()
	respond(w, http.StatusCreated, expenses[len(expenses)-1])
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid index")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ledger.DeleteExpense(i) {
		respondError(w, http.StatusNotFound, "no deletable expense at this index")
		return
	}
	if !s.saved(w) {
		return
	}
	respond(w, http.StatusOK, map[string]int{"deleted": i})
}

func (s *Server) handleListChannels(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	respond(w, http.StatusOK, s.ledger.Channels())
}

func (s *Server) handleAddChannel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ledger.AddChannel(body.Name) {
		respondError(w, http.StatusBadRequest, "empty or duplicate channel")
		return
	}
	respond(w, http.StatusCreated, s.ledger.Channels())
}

func (s *Server) handleGetCurrency(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := s.ledger.Currency()
	respond(w, http.StatusOK, map[string]string{
		"code":   code,
		"symbol": printsales.CurrencySymbol(code),
	})
}

// handleSetCurrency saves the currency preference. The running ledger keeps
// its currency; the new preference applies on the next start.
func (s *Server) handleSetCurrency(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := printsales.SaveCurrency(body.Code); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respond(w, http.StatusOK, map[string]string{
		"code":   body.Code,
		"symbol": printsales.CurrencySymbol(body.Code),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	what := chi.URLParam(r, "what")
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+what+`.csv"`)

	var err error
	switch what {
	case "sales":
		err = printsales.ExportSales(w, s.ledger)
	case "items":
		err = printsales.ExportItems(w, s.ledger)
	case "expenses":
		err = printsales.ExportExpenses(w, s.ledger, boolParam(r, "cogs"))
	case "series":
		var rng printsales.Range
		rng, err = s.rangeParams(r)
		if err == nil {
			err = printsales.ExportSeries(w, s.ledger, rng, boolParam(r, "cash"))
		}
	default:
		w.Header().Del("Content-Disposition")
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("exporting %s: %v", what, err)
	}
}
