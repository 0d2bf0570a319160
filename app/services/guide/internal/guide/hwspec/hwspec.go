// Package hwspec extracts structured hardware attributes from free-text
// product spec strings as found in the catalog. Catalog text mixes Korean and
// English with arbitrary separators, so every pattern tolerates "[\s/]*"
// between tokens.
package hwspec

// CPUBrand identifies a CPU vendor.
type CPUBrand string

const (
	BrandIntel CPUBrand = "intel"
	BrandAMD   CPUBrand = "amd"
)

// CpuSpec is a decomposed CPU attribute. Score is a coarse comparable value
// derived as generation*10 + model; 0 when neither is known.
type CpuSpec struct {
	Brand      CPUBrand
	Generation int
	Model      int
	Score      int
}

// GPUTier classifies a GPU family. Tiers are ordered by extraction priority:
// RTX beats GTX beats Radeon/RX beats the bare discrete-graphics keyword.
type GPUTier string

const (
	TierRTX      GPUTier = "rtx"
	TierGTX      GPUTier = "gtx"
	TierRadeon   GPUTier = "radeon"
	TierDiscrete GPUTier = "discrete"
)

// GpuSpec is a decomposed GPU attribute. Score puts the tiers on one numeric
// scale: RTX = 1000+model, Radeon = 800+model, GTX = 500+model, bare
// discrete keyword = 100.
type GpuSpec struct {
	Tier  GPUTier
	Model int
	Score int
}

func cpuScore(generation, model int) int {
	if generation == 0 {
		return 0
	}
	return generation*10 + model
}

func gpuScore(tier GPUTier, model int) int {
	switch tier {
	case TierRTX:
		return 1000 + model
	case TierGTX:
		return 500 + model
	case TierRadeon:
		return 800 + model
	case TierDiscrete:
		return 100
	default:
		return 0
	}
}
