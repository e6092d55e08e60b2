package payments

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/Spok95/uniformhub/internal/domain/cart"
)

var ErrUnnumberedReceipt = errors.New("payments: receipt has no number")

// Journal keeps the receipts issued since startup, oldest first.
type Journal struct {
	mu       sync.Mutex
	byNumber map[string]cart.Receipt
	order    []string
}

func NewJournal() *Journal {
	return &Journal{byNumber: make(map[string]cart.Receipt)}
}

// Record journals r and returns it as stored. A number already taken gets a
// "-2", "-3", ... suffix so every sale keeps its own receipt.
func (j *Journal) Record(r cart.Receipt) (cart.Receipt, error) {
	if r.Number == "" {
		return r, ErrUnnumberedReceipt
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	base := r.Number
	for n := 2; ; n++ {
		if _, taken := j.byNumber[r.Number]; !taken {
			break
		}
		r.Number = fmt.Sprintf("%s-%d", base, n)
	}
	j.byNumber[r.Number] = r
	j.order = append(j.order, r.Number)
	return r, nil
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.order)
}

func (j *Journal) Get(number string) (cart.Receipt, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	r, ok := j.byNumber[number]
	return r, ok
}

// Recent returns up to n receipts, newest first.
func (j *Journal) Recent(n int) []cart.Receipt {
	j.mu.Lock()
	defer j.mu.Unlock()
	if n > len(j.order) {
		n = len(j.order)
	}
	out := make([]cart.Receipt, 0, n)
	for i := len(j.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, j.byNumber[j.order[i]])
	}
	return out
}

// Takings sums receipt totals by payment method.
func (j *Journal) Takings() map[cart.PaymentMethod]float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make(map[cart.PaymentMethod]float64)
	for _, r := range j.byNumber {
		out[r.Method] += r.Total
	}
	return out
}

type Service struct {
	baseURL string
	journal *Journal
}

func NewService(baseURL string, journal *Journal) *Service {
	return &Service{baseURL: strings.TrimRight(baseURL, "/"), journal: journal}
}

// ReceiptURL links to the printable page served by Handler.
func (s *Service) ReceiptURL(number string) string {
	return fmt.Sprintf("%s/receipts/%s", s.baseURL, url.PathEscape(number))
}

// Settle records a completed sale. It returns the receipt as journaled, whose
// number may differ from the one passed in, and the link to it.
func (s *Service) Settle(r cart.Receipt) (cart.Receipt, string, error) {
	stored, err := s.journal.Record(r)
	if err != nil {
		return r, "", err
	}
	return stored, s.ReceiptURL(stored.Number), nil
}

func (s *Service) Journal() *Journal { return s.journal }
