package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// ProductRecord is one catalog row as scraped from the price-comparison site.
// All fields are kept as text; the scoring engine extracts what it needs.
type ProductRecord struct {
	Name        string
	PriceLowest string
	SpecText    string
	URL         string
	Rating      string
	ReviewCount string
}

// The scraper has shipped two generations of column headers; both are accepted.
var columnAliases = map[string]string{
	"상품명":      "name",
	"최저가":      "price",
	"가격":       "price",
	"상세스펙":     "spec",
	"스펙":       "spec",
	"URL":      "url",
	"상품 상세 URL": "url",
	"별점":       "rating",
	"리뷰 수":     "reviews",
}

// Load reads the product catalog CSV from path. Rows with missing fields are
// kept with the fields blank; only rows without a product name are dropped.
func Load(path string) ([]ProductRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, err
	}
	logx.Infow("catalog loaded", logx.Field("file", path), logx.Field("products", len(records)))
	return records, nil
}

// Read parses catalog CSV content from r.
func Read(r io.Reader) ([]ProductRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int)
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		if key, ok := columnAliases[h]; ok {
			if _, seen := cols[key]; !seen {
				cols[key] = i
			}
		}
	}

	var records []ProductRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		field := func(key string) string {
			idx, ok := cols[key]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		rec := ProductRecord{
			Name:        field("name"),
			PriceLowest: field("price"),
			SpecText:    field("spec"),
			URL:         field("url"),
			Rating:      field("rating"),
			ReviewCount: field("reviews"),
		}
		if rec.Name == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParsePrice converts a price string like "1,234,000" to won. Returns false
// for blank or unparseable prices.
func ParsePrice(s string) (int64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// FormatWon renders a won amount with thousands separators, e.g. 1,500,000원.
func FormatWon(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sign + sb.String() + "원"
}
