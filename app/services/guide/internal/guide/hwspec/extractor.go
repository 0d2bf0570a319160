package hwspec

import (
	"regexp"
	"strconv"
	"strings"
)

var intelSpecPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:인텔|intel)[\s/]*코어[\s/]*(?:i|울트라|ultra)?[\s/]*(\d+)[\s/]*(?:세대|gen)?[\s/]*(?:i|울트라|ultra)?[\s/]*(\d+)`),
	regexp.MustCompile(`코어[\s/]*(?:i|울트라|ultra)?[\s/]*(\d+)[\s/]*(?:세대|gen)?[\s/]*(?:i|울트라|ultra)?[\s/]*(\d+)`),
	regexp.MustCompile(`i(\d+)[\s/]*-[\s/]*(\d+)[\s/]*세대`),
	regexp.MustCompile(`코어[\s/]*울트라[\s/]*(\d+)`),
}

var amdSpecPattern = regexp.MustCompile(`(?:amd|라이젠|ryzen)[\s/]*(\d+)`)

var (
	rtxPattern      = regexp.MustCompile(`rtx[\s/]*(\d{4,5})`)
	gtxPattern      = regexp.MustCompile(`gtx[\s/]*(\d{3,4})`)
	radeonPattern   = regexp.MustCompile(`(?:radeon|rx)[\s/]*(\d{4})`)
	ramPattern      = regexp.MustCompile(`(\d+)\s*gb`)
	weightPattern   = regexp.MustCompile(`(\d+\.?\d*)\s*kg`)
	discreteKeyword = "외장그래픽"
)

// ExtractCPU parses catalog spec text into a CpuSpec. The second return is
// false when no brand pattern matches; callers must not conflate that with a
// zero-score CPU of a known brand.
func ExtractCPU(specText string) (CpuSpec, bool) {
	text := strings.ToLower(specText)

	for _, p := range intelSpecPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		cpu := CpuSpec{Brand: BrandIntel}
		cpu.Generation = atoi(m[1])
		if len(m) > 2 {
			cpu.Model = atoi(m[2])
		}
		cpu.Score = cpuScore(cpu.Generation, cpu.Model)
		return cpu, true
	}

	if m := amdSpecPattern.FindStringSubmatch(text); m != nil {
		cpu := CpuSpec{Brand: BrandAMD, Generation: atoi(m[1])}
		cpu.Score = cpuScore(cpu.Generation, cpu.Model)
		return cpu, true
	}

	return CpuSpec{}, false
}

// ExtractGPU parses catalog spec text into a GpuSpec. Only the highest
// matching tier counts; an RTX hit hides any GTX text further along.
func ExtractGPU(specText string) (GpuSpec, bool) {
	text := strings.ToLower(specText)

	for _, tier := range []struct {
		pattern *regexp.Regexp
		tier    GPUTier
	}{
		{rtxPattern, TierRTX},
		{gtxPattern, TierGTX},
		{radeonPattern, TierRadeon},
	} {
		if m := tier.pattern.FindStringSubmatch(text); m != nil {
			gpu := GpuSpec{Tier: tier.tier, Model: atoi(m[1])}
			gpu.Score = gpuScore(gpu.Tier, gpu.Model)
			return gpu, true
		}
	}

	if strings.Contains(text, discreteKeyword) {
		return GpuSpec{Tier: TierDiscrete, Score: gpuScore(TierDiscrete, 0)}, true
	}

	return GpuSpec{}, false
}

// ExtractRAM returns the largest "<N>GB" value in the spec text. Catalog rows
// often list several memory configurations; the richest one is taken as
// representative.
func ExtractRAM(specText string) (int, bool) {
	matches := ramPattern.FindAllStringSubmatch(strings.ToLower(specText), -1)
	if len(matches) == 0 {
		return 0, false
	}
	max := 0
	for _, m := range matches {
		if v := atoi(m[1]); v > max {
			max = v
		}
	}
	return max, true
}

// ExtractWeight returns the first "<N.N>kg" value in the spec text.
func ExtractWeight(specText string) (float64, bool) {
	m := weightPattern.FindStringSubmatch(strings.ToLower(specText))
	if m == nil {
		return 0, false
	}
	w, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return w, true
}

func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
