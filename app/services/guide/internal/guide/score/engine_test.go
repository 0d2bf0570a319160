package score

import (
	"context"
	"testing"

	"TechGuideAI/app/services/guide/internal/catalog"
	"TechGuideAI/app/services/guide/internal/guide/dialog"
	"TechGuideAI/app/services/guide/internal/guide/hwspec"
	requirement "TechGuideAI/app/services/guide/internal/guide/require"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gamingLaptops() []catalog.ProductRecord {
	return []catalog.ProductRecord{
		{
			Name:        "레노버 게이밍 노트북",
			PriceLowest: "1400000",
			SpecText:    "인텔 / i7-13세대 / 16GB / 외장그래픽 RTX 4060 / 1.4kg",
		},
		{
			Name:        "LG 사무용 노트북",
			PriceLowest: "900000",
			SpecText:    "인텔 / i5-12세대 / 8GB / 내장그래픽 / 1.1kg",
		},
		{
			Name:        "한성 게이밍 데스크탑",
			PriceLowest: "1200000",
			SpecText:    "인텔 / i5-14세대 / 16GB / 외장그래픽 RTX 4060",
		},
	}
}

func gamingProfile() *requirement.Profile {
	return &requirement.Profile{
		CPU:   &hwspec.CpuSpec{Brand: hwspec.BrandIntel, Generation: 5, Model: 6600, Score: 6650},
		RAMGB: 16,
		GPU:   &hwspec.GpuSpec{Tier: hwspec.TierRTX, Model: 3060, Score: 4060},
	}
}

func TestRankGamingPrefersDiscreteGPUOverCheaperIntegrated(t *testing.T) {
	e := NewEngine()
	in := Input{
		Category:   dialog.CategoryLaptop,
		Usage:      dialog.UsageGaming,
		Budget:     1500000,
		WeightPref: dialog.WeightLight,
		Portable:   dialog.PortableYes,
	}

	got := e.Rank(context.Background(), gamingProfile(), gamingLaptops(), in)
	require.NotEmpty(t, got)
	assert.Equal(t, "레노버 게이밍 노트북", got[0].Product.Name)
	for _, c := range got {
		assert.NotEqual(t, "LG 사무용 노트북", c.Product.Name,
			"integrated-only machine must not be recommended for gaming")
		assert.NotEqual(t, "한성 게이밍 데스크탑", c.Product.Name,
			"desktop must not appear in a laptop search")
	}
}

func TestRankIsDeterministic(t *testing.T) {
	e := NewEngine()
	in := Input{
		Category:   dialog.CategoryLaptop,
		Usage:      dialog.UsageGaming,
		Budget:     1500000,
		WeightPref: dialog.WeightLight,
		Portable:   dialog.PortableYes,
	}

	first := e.Rank(context.Background(), gamingProfile(), gamingLaptops(), in)
	for i := 0; i < 10; i++ {
		again := e.Rank(context.Background(), gamingProfile(), gamingLaptops(), in)
		assert.Equal(t, first, again)
	}
}

func TestRankCategoryFilterDesktop(t *testing.T) {
	e := NewEngine()
	in := Input{Category: dialog.CategoryDesktop, Usage: dialog.UsageGaming, Budget: 1500000}

	got := e.Rank(context.Background(), gamingProfile(), gamingLaptops(), in)
	require.Len(t, got, 1)
	assert.Equal(t, "한성 게이밍 데스크탑", got[0].Product.Name)
}

func TestRankEmptyPoolAfterFilter(t *testing.T) {
	e := NewEngine()
	products := []catalog.ProductRecord{
		{Name: "LG 그램 노트북", PriceLowest: "1650000", SpecText: "16GB / 1.2kg"},
	}
	in := Input{Category: dialog.CategoryDesktop}

	got := e.Rank(context.Background(), nil, products, in)
	assert.Empty(t, got)
}

func TestRankBudgetBandsOrderValue(t *testing.T) {
	spec := "인텔 / i5-12세대 / 16GB / 외장그래픽 RTX 4060"
	products := []catalog.ProductRecord{
		{Name: "데스크탑 A", PriceLowest: "700000", SpecText: spec},
		{Name: "데스크탑 B", PriceLowest: "550000", SpecText: spec},
		{Name: "데스크탑 C", PriceLowest: "1300000", SpecText: spec},
	}
	in := Input{Category: dialog.CategoryDesktop, Usage: dialog.UsageOffice, Budget: 1000000}

	got := NewEngine().Rank(context.Background(), &requirement.Profile{}, products, in)
	require.Len(t, got, 2)
	assert.Equal(t, "데스크탑 B", got[0].Product.Name, "mid-band price is the best value")
	assert.Equal(t, "데스크탑 A", got[1].Product.Name)
}

func TestRankTieKeepsCatalogOrder(t *testing.T) {
	spec := "인텔 / i5-12세대 / 16GB / 외장그래픽 RTX 4060"
	products := []catalog.ProductRecord{
		{Name: "데스크탑 가", PriceLowest: "800000", SpecText: spec},
		{Name: "데스크탑 나", PriceLowest: "800000", SpecText: spec},
		{Name: "데스크탑 다", PriceLowest: "800000", SpecText: spec},
	}
	in := Input{Category: dialog.CategoryDesktop, Usage: dialog.UsageOffice, Budget: 1000000}

	got := NewEngine().Rank(context.Background(), nil, products, in)
	require.Len(t, got, 3)
	assert.Equal(t, "데스크탑 가", got[0].Product.Name)
	assert.Equal(t, "데스크탑 나", got[1].Product.Name)
	assert.Equal(t, "데스크탑 다", got[2].Product.Name)
}

func TestRankNoRequirementProfileStillRanks(t *testing.T) {
	in := Input{Category: dialog.CategoryLaptop, Usage: dialog.UsageGaming, Budget: 1500000}

	got := NewEngine().Rank(context.Background(), nil, gamingLaptops(), in)
	require.NotEmpty(t, got)
	assert.Equal(t, "레노버 게이밍 노트북", got[0].Product.Name)
}

func TestRankCapsAtTopThree(t *testing.T) {
	spec := "인텔 / i5-12세대 / 16GB / 외장그래픽 RTX 4060"
	products := make([]catalog.ProductRecord, 0, 5)
	for _, name := range []string{"데스크탑 1호", "데스크탑 2호", "데스크탑 3호", "데스크탑 4호", "데스크탑 5호"} {
		products = append(products, catalog.ProductRecord{Name: name, PriceLowest: "800000", SpecText: spec})
	}
	in := Input{Category: dialog.CategoryDesktop, Usage: dialog.UsageOffice, Budget: 1000000}

	got := NewEngine().Rank(context.Background(), nil, products, in)
	assert.Len(t, got, 3)
}

func TestRankGeneralUsageSurfacesLeastBadWhenNothingPositive(t *testing.T) {
	spec := "인텔 / i5-12세대 / 16GB"
	products := []catalog.ProductRecord{
		{Name: "데스크탑 A호", PriceLowest: "2000000", SpecText: spec},
		{Name: "데스크탑 B호", PriceLowest: "2200000", SpecText: spec},
		{Name: "데스크탑 C호", PriceLowest: "2400000", SpecText: spec},
		{Name: "데스크탑 D호", PriceLowest: "2600000", SpecText: spec},
	}
	in := Input{Category: dialog.CategoryDesktop, Usage: dialog.UsageOffice, Budget: 1000000}

	got := NewEngine().Rank(context.Background(), nil, products, in)
	require.Len(t, got, 3, "office usage never comes back empty while the pool has candidates")
	for _, c := range got {
		assert.Negative(t, c.Score)
	}
}

func TestRankGamingAllNegativeWithoutDiscreteGPUReturnsEmpty(t *testing.T) {
	products := []catalog.ProductRecord{
		{Name: "싸구려 게이밍 노트북", PriceLowest: "2000000", SpecText: "인텔 / i5-12세대 / 8GB / 2.8kg"},
		{Name: "구형 사무 노트북", PriceLowest: "2200000", SpecText: "인텔 / i3-10세대 / 8GB / 2.4kg"},
	}
	in := Input{Category: dialog.CategoryLaptop, Usage: dialog.UsageGaming, Budget: 1000000}

	got := NewEngine().Rank(context.Background(), nil, products, in)
	assert.Empty(t, got, "gaming never recommends machines with no graphics signal and nothing going for them")
}
