// Package require turns free-text system-requirement snippets into the same
// structured attribute shapes the catalog extractor produces, so that
// requirement and product can be compared on one numeric scale.
package require

import (
	"regexp"
	"strings"

	"TechGuideAI/app/services/guide/internal/guide/hwspec"
)

// Requirement pages phrase CPUs as "Intel Core i5-12400"; the catalog writes
// "인텔 코어 i5 12세대". The pattern families below cover the requirement side.
var (
	intelReqPattern = regexp.MustCompile(`(?:intel|인텔)[\s/]*core[\s/]*(?:i|i-)?[\s/]*(\d+)[\s/]*-[\s/]*(\d+)[a-z]*`)
	amdReqPattern   = regexp.MustCompile(`(?:amd|라이젠|ryzen)[\s/]*(\d+)`)
	ramReqPattern   = regexp.MustCompile(`(\d+)\s*gb\s*(?:ram|램|메모리)`)
)

// ParseRequiredCPU parses a requirement-phrased CPU mention. Scoring follows
// the catalog extractor exactly.
func ParseRequiredCPU(text string) (hwspec.CpuSpec, bool) {
	lower := strings.ToLower(text)

	if m := intelReqPattern.FindStringSubmatch(lower); m != nil {
		cpu := hwspec.CpuSpec{Brand: hwspec.BrandIntel}
		cpu.Generation = atoi(m[1])
		cpu.Model = atoi(m[2])
		cpu.Score = cpu.Generation*10 + cpu.Model
		if cpu.Generation == 0 {
			cpu.Score = 0
		}
		return cpu, true
	}

	if m := amdReqPattern.FindStringSubmatch(lower); m != nil {
		cpu := hwspec.CpuSpec{Brand: hwspec.BrandAMD}
		cpu.Generation = atoi(m[1])
		cpu.Score = cpu.Generation * 10
		return cpu, true
	}

	return hwspec.CpuSpec{}, false
}

// ParseRequiredGPU parses a requirement-phrased GPU mention. The tier priority
// and score formulas match the catalog extractor; a bare discrete-graphics
// keyword is not a requirement tier.
func ParseRequiredGPU(text string) (hwspec.GpuSpec, bool) {
	gpu, ok := hwspec.ExtractGPU(text)
	if !ok || gpu.Tier == hwspec.TierDiscrete {
		return hwspec.GpuSpec{}, false
	}
	return gpu, true
}

// ParseRequiredRAM finds the first "<N>GB RAM/메모리" mention.
func ParseRequiredRAM(text string) (int, bool) {
	m := ramReqPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}
	if v := atoi(m[1]); v > 0 {
		return v, true
	}
	return 0, false
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
