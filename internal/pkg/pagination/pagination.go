// Package pagination computes the page bounds and the "Showing X to Y
// of Z entries" label rendered under every dashboard table.
package pagination

import "fmt"

// Page describes one slice of a listing. Current is 0-based.
type Page struct {
	Total   int `json:"total"`
	Current int `json:"currentPage"`
	Size    int `json:"pageSize"`
}

// From is the 1-based index of the first visible row, 0 when the
// listing is empty.
func (p Page) From() int {
	if p.Total == 0 {
		return 0
	}

	return p.Current*p.Size + 1
}

// To is the 1-based index of the last visible row.
func (p Page) To() int {
	to := (p.Current + 1) * p.Size
	if to > p.Total {
		to = p.Total
	}

	return to
}

func (p Page) Label() string {
	return fmt.Sprintf("Showing %d to %d of %d entries", p.From(), p.To(), p.Total)
}

func (p Page) HasPrev() bool {
	return p.Current > 0
}

func (p Page) HasNext() bool {
	return (p.Current+1)*p.Size < p.Total
}

// Offset and Limit feed the repository query for this page.
func (p Page) Offset() int {
	return p.Current * p.Size
}

func (p Page) Limit() int {
	return p.Size
}
