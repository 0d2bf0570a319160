package helper

import (
	"testing"

	"TechGuideAI/app/services/guide/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestProductURL(t *testing.T) {
	tests := []struct {
		name string
		p    catalog.ProductRecord
		want string
	}{
		{
			name: "absolute url kept",
			p:    catalog.ProductRecord{Name: "그램", URL: "https://prod.danawa.com/info/?pcode=1"},
			want: "https://prod.danawa.com/info/?pcode=1",
		},
		{
			name: "site relative path gets prefix",
			p:    catalog.ProductRecord{Name: "그램", URL: "/info/?pcode=1"},
			want: "https://www.danawa.com/info/?pcode=1",
		},
		{
			name: "protocol relative url",
			p:    catalog.ProductRecord{Name: "그램", URL: "//prod.danawa.com/info/?pcode=1"},
			want: "https://prod.danawa.com/info/?pcode=1",
		},
		{
			name: "missing url falls back to search",
			p:    catalog.ProductRecord{Name: "LG 그램", URL: ""},
			want: "https://search.danawa.com/dsearch.php?query=LG+%EA%B7%B8%EB%9E%A8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductURL(tt.p))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1,650,000원", FormatPrice("1650000"))
	assert.Equal(t, "1,650,000원", FormatPrice("1,650,000"))
	assert.Equal(t, "가격문의", FormatPrice("가격문의"), "unparseable price passes through")
}
