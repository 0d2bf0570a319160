// Package score ranks catalog products against a requirement profile and the
// user's constraints. Scoring is a pure function of its inputs: identical
// inputs always produce identical ordered output.
package score

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"TechGuideAI/app/common/consts/biz"
	"TechGuideAI/app/services/guide/internal/catalog"
	"TechGuideAI/app/services/guide/internal/guide/dialog"
	"TechGuideAI/app/services/guide/internal/guide/hwspec"
	"TechGuideAI/app/services/guide/internal/guide/require"

	"github.com/zeromicro/go-zero/core/mr"
)

// Input carries the user constraints for one scoring pass.
type Input struct {
	Category   dialog.Category
	Usage      dialog.Usage
	Budget     int64 // won, 0 = no budget constraint
	WeightPref dialog.WeightPref
	Portable   dialog.Portable
}

// Candidate is an ephemeral scored product; recomputed on every pass, never
// persisted.
type Candidate struct {
	Product catalog.ProductRecord
	Score   int
}

var (
	laptopNameRe  = regexp.MustCompile(`(?i)노트북|랩탑|laptop`)
	desktopNameRe = regexp.MustCompile(`(?i)데스크탑|데스크톱|PC|컴퓨터`)
)

const (
	integratedKeyword = "내장그래픽"
	discreteKeyword   = "외장그래픽"
)

var discreteMarkers = []string{discreteKeyword, "rtx", "gtx", "radeon", "rx"}

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Rank scores every catalog product that survives the category filter and
// returns the ordered top candidates. Ties keep catalog order (stable sort).
func (e *Engine) Rank(ctx context.Context, req *require.Profile, products []catalog.ProductRecord, in Input) []Candidate {
	if req == nil {
		req = &require.Profile{}
	}

	pool := filterByCategory(products, in.Category)
	if len(pool) == 0 {
		return nil
	}

	scored := e.scoreAll(ctx, req, pool, in)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if in.Usage == dialog.UsageGaming || in.Usage == dialog.UsageWork {
		return selectForDiscreteUsage(scored)
	}

	positive := make([]Candidate, 0, len(scored))
	for _, c := range scored {
		if c.Score > 0 {
			positive = append(positive, c)
		}
	}
	if len(positive) > 0 {
		return top(positive)
	}
	// nothing scored above zero: still surface the least-bad options
	return top(scored)
}

// scoreAll scores candidates in parallel; per-product scoring shares no
// state, so the only coordination is reassembling catalog order afterwards.
type indexed struct {
	idx int
	c   Candidate
}

func (e *Engine) scoreAll(_ context.Context, req *require.Profile, pool []catalog.ProductRecord, in Input) []Candidate {
	results, _ := mr.MapReduce(func(source chan<- indexed) {
		for i, p := range pool {
			source <- indexed{idx: i, c: Candidate{Product: p}}
		}
	}, func(item indexed, writer mr.Writer[indexed], _ func(error)) {
		item.c.Score = scoreProduct(req, item.c.Product, in)
		writer.Write(item)
	}, func(pipe <-chan indexed, writer mr.Writer[[]Candidate], _ func(error)) {
		out := make([]Candidate, len(pool))
		for item := range pipe {
			out[item.idx] = item.c
		}
		writer.Write(out)
	})
	return results
}

func filterByCategory(products []catalog.ProductRecord, category dialog.Category) []catalog.ProductRecord {
	var keep, drop *regexp.Regexp
	switch category {
	case dialog.CategoryLaptop:
		keep, drop = laptopNameRe, desktopNameRe
	case dialog.CategoryDesktop:
		keep, drop = desktopNameRe, laptopNameRe
	default:
		return products
	}

	filtered := make([]catalog.ProductRecord, 0, len(products))
	for _, p := range products {
		if keep.MatchString(p.Name) && !drop.MatchString(p.Name) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func scoreProduct(req *require.Profile, p catalog.ProductRecord, in Input) int {
	specLower := strings.ToLower(p.SpecText)
	score := 0

	productCPU, hasCPU := hwspec.ExtractCPU(p.SpecText)
	productRAM, hasRAM := hwspec.ExtractRAM(p.SpecText)
	productGPU, hasGPU := hwspec.ExtractGPU(p.SpecText)

	score += cpuPoints(req.CPU, productCPU, hasCPU, specLower)
	score += ramPoints(req.RAMGB, productRAM, hasRAM)
	score += gpuPoints(req.GPU, productGPU, hasGPU, specLower, in.Usage)
	score += usagePoints(productGPU, hasGPU, specLower, in.Usage)
	score += budgetPoints(in.Budget, p.PriceLowest)

	if in.Category == dialog.CategoryLaptop {
		weight, hasWeight := hwspec.ExtractWeight(p.SpecText)
		score += weightPoints(in.WeightPref, weight, hasWeight)
		score += portablePoints(in.Portable, weight, hasWeight)
	}

	return score
}

func cpuPoints(required *hwspec.CpuSpec, product hwspec.CpuSpec, hasProduct bool, specLower string) int {
	if required == nil {
		return 0
	}
	if !hasProduct {
		// unextractable product CPU: give a nudge if the required brand at
		// least appears in the text
		if strings.Contains(specLower, string(required.Brand)) {
			return 5
		}
		return 0
	}

	if required.Brand == product.Brand {
		points := 20
		if product.Generation > 0 && required.Generation > 0 {
			if product.Generation >= required.Generation {
				points += 30
				if product.Model > 0 && required.Model > 0 {
					if product.Model >= required.Model {
						points += 20
					} else {
						points += 10
					}
				}
			} else {
				points += 5
			}
		}
		return points
	}

	if product.Score >= required.Score {
		return 15
	}
	return 0
}

func ramPoints(requiredGB, productGB int, hasProduct bool) int {
	if requiredGB == 0 || !hasProduct {
		return 0
	}
	if productGB >= requiredGB {
		points := 30
		if float64(productGB) >= float64(requiredGB)*1.5 {
			points += 10
		}
		return points
	}
	return 5
}

func gpuPoints(required *hwspec.GpuSpec, product hwspec.GpuSpec, hasProduct bool, specLower string, usage dialog.Usage) int {
	if required == nil {
		// no GPU requirement, but a gaming build still wants real graphics
		if hasProduct && product.Tier != hwspec.TierDiscrete && usage == dialog.UsageGaming {
			return 20
		}
		return 0
	}

	if hasProduct {
		if required.Tier == product.Tier {
			points := 40
			if product.Model > 0 && required.Model > 0 {
				if product.Model >= required.Model {
					points += 30
				} else {
					points += 10
				}
			}
			return points
		}
		if product.Score >= required.Score {
			return 20
		}
		return 0
	}

	if strings.Contains(specLower, string(required.Tier)) {
		return 15
	}
	if strings.Contains(specLower, discreteKeyword) {
		return 10
	}
	return 0
}

func usagePoints(productGPU hwspec.GpuSpec, hasGPU bool, specLower string, usage dialog.Usage) int {
	if usage != dialog.UsageGaming && usage != dialog.UsageWork {
		return 0
	}
	if hasGPU {
		return 15
	}
	if strings.Contains(specLower, integratedKeyword) && !strings.Contains(specLower, discreteKeyword) {
		// integrated-only graphics: keep it rankable but effectively out
		return -100
	}
	return 0
}

func budgetPoints(budget int64, priceText string) int {
	if budget <= 0 {
		return 0
	}
	price, ok := catalog.ParsePrice(priceText)
	if !ok {
		return 0
	}

	if price <= budget {
		ratio := float64(price) / float64(budget)
		switch {
		case ratio >= 0.9:
			return 10
		case ratio >= 0.7:
			return 15
		case ratio >= 0.5:
			return 20 // best value band
		default:
			return 10
		}
	}

	over := float64(price-budget) / float64(budget)
	switch {
	case over <= 0.1:
		return -5
	case over <= 0.2:
		return -15
	default:
		return -30
	}
}

func weightPoints(pref dialog.WeightPref, weight float64, hasWeight bool) int {
	switch pref {
	case dialog.WeightLight:
		if !hasWeight {
			return 0
		}
		switch {
		case weight <= 1.5:
			return 20
		case weight <= 2.0:
			return 10
		default:
			return -10
		}
	case dialog.WeightNormal:
		if hasWeight && weight >= 1.5 && weight <= 2.5 {
			return 10
		}
		return 0
	case dialog.WeightHeavyOK:
		return 5
	default:
		return 0
	}
}

func portablePoints(portable dialog.Portable, weight float64, hasWeight bool) int {
	switch portable {
	case dialog.PortableYes:
		if !hasWeight {
			return 0
		}
		switch {
		case weight <= 1.5:
			return 15
		case weight <= 2.0:
			return 5
		default:
			return 0
		}
	case dialog.PortableNo:
		return 5
	default:
		return 0
	}
}

// selectForDiscreteUsage applies the gaming/work post-filter: integrated-only
// machines are dropped, and if anything with a discrete-GPU signal survives,
// only those are returned.
func selectForDiscreteUsage(scored []Candidate) []Candidate {
	pool := make([]Candidate, 0, len(scored))
	for _, c := range scored {
		if isIntegratedOnly(c.Product.SpecText) {
			continue
		}
		pool = append(pool, c)
	}

	withDiscrete := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if hasDiscreteMarker(c.Product.SpecText) {
			withDiscrete = append(withDiscrete, c)
		}
	}
	if len(withDiscrete) > 0 {
		return top(withDiscrete)
	}

	positive := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if c.Score > 0 {
			positive = append(positive, c)
		}
	}
	if len(positive) > 0 {
		return top(positive)
	}
	return nil
}

func isIntegratedOnly(specText string) bool {
	lower := strings.ToLower(specText)
	return strings.Contains(lower, integratedKeyword) && !strings.Contains(lower, discreteKeyword)
}

func hasDiscreteMarker(specText string) bool {
	lower := strings.ToLower(specText)
	for _, marker := range discreteMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func top(candidates []Candidate) []Candidate {
	if len(candidates) > biz.TopN {
		return candidates[:biz.TopN]
	}
	return candidates
}
