package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCurrentHeaders(t *testing.T) {
	csvData := strings.Join([]string{
		"상품명,최저가,상세스펙,URL,별점,리뷰 수",
		"LG전자 그램 노트북,1650000,인텔 i7-13세대 / 16GB / 1.35kg,/p/gram,4.6,208",
		",999,헤더 없는 행은 버려짐,,,",
		"한성컴퓨터 데스크탑,590000,인텔 i5-12세대 / 8GB,/p/hansung,,",
	}, "\n")

	records, err := Read(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "LG전자 그램 노트북", records[0].Name)
	assert.Equal(t, "1650000", records[0].PriceLowest)
	assert.Equal(t, "인텔 i7-13세대 / 16GB / 1.35kg", records[0].SpecText)
	assert.Equal(t, "/p/gram", records[0].URL)
	assert.Equal(t, "4.6", records[0].Rating)
	assert.Equal(t, "208", records[0].ReviewCount)
	assert.Empty(t, records[1].Rating)
}

func TestReadLegacyHeaders(t *testing.T) {
	csvData := strings.Join([]string{
		"상품명,가격,스펙,상품 상세 URL",
		"삼성전자 갤럭시북,1890000,코어 울트라7 / 16GB,https://example.com/p/1",
	}, "\n")

	records, err := Read(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1890000", records[0].PriceLowest)
	assert.Equal(t, "코어 울트라7 / 16GB", records[0].SpecText)
	assert.Equal(t, "https://example.com/p/1", records[0].URL)
}

func TestReadStripsBOM(t *testing.T) {
	csvData := "\uFEFF상품명,최저가\n테스트 노트북,100000\n"

	records, err := Read(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "테스트 노트북", records[0].Name)
	assert.Equal(t, "100000", records[0].PriceLowest)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1,234,000", 1234000, true},
		{"590000", 590000, true},
		{" 1500000 ", 1500000, true},
		{"1234000.0", 1234000, true},
		{"", 0, false},
		{"가격문의", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePrice(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "1,500,000원", FormatWon(1500000))
	assert.Equal(t, "590,000원", FormatWon(590000))
	assert.Equal(t, "0원", FormatWon(0))
	assert.Equal(t, "999원", FormatWon(999))
	assert.Equal(t, "-1,000원", FormatWon(-1000))
}
