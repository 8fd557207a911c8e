package storefront

import (
	"sort"
	"strings"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
)

type SortKey string

const (
	SortByCustomer SortKey = "customer"
	SortByDate     SortKey = "date"
	SortByID       SortKey = "id"
)

// OrderQuery filters the admin order table. Zero values disable a filter;
// with no Sort the newest orders come first.
type OrderQuery struct {
	Term         string
	From         string
	To           string
	ShippingType models.ShippingType
	Sort         SortKey
	Desc         bool
	Page         int
}

type OrderPage struct {
	Orders     []models.Order `json:"orders"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Total      int            `json:"total"`
}

func (q OrderQuery) match(o models.Order) bool {
	if term := strings.ToLower(strings.TrimSpace(q.Term)); term != "" {
		if !strings.Contains(strings.ToLower(o.ID), term) &&
			!strings.Contains(strings.ToLower(o.CustomerName), term) &&
			!strings.Contains(o.CustomerPhone, term) {
			return false
		}
	}
	// Dates are compared as text, which matches time order for OrderTimeLayout.
	if q.From != "" && o.Date < q.From {
		return false
	}
	if q.To != "" && o.Date > q.To+" 23:59:59" {
		return false
	}
	if q.ShippingType != "" && o.ShippingType != q.ShippingType {
		return false
	}
	return true
}

func sortValue(o models.Order, key SortKey) string {
	switch key {
	case SortByCustomer:
		return o.CustomerName
	case SortByDate:
		return o.Date
	default:
		return o.ID
	}
}

// Query returns one page of the filtered and sorted orders. Pages start at 1
// and out-of-range pages are clamped.
func (b *OrderBook) Query(q OrderQuery) OrderPage {
	b.mu.RLock()
	result := []models.Order{}
	for _, o := range b.orders {
		if q.match(o) {
			result = append(result, o)
		}
	}
	b.mu.RUnlock()

	if q.Sort == "" {
		sort.SliceStable(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	} else {
		sort.SliceStable(result, func(i, j int) bool {
			a, c := sortValue(result[i], q.Sort), sortValue(result[j], q.Sort)
			if q.Desc {
				return a > c
			}
			return a < c
		})
	}

	total := len(result)
	pages := (total + PageSize - 1) / PageSize
	page := q.Page
	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return OrderPage{Orders: result[start:end], Page: page, TotalPages: pages, Total: total}
}
