package hwspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCPUIntel(t *testing.T) {
	cpu, ok := ExtractCPU("인텔 / i7-13세대 / 16GB / 1.35kg")
	require.True(t, ok)
	assert.Equal(t, BrandIntel, cpu.Brand)
	assert.Equal(t, 7, cpu.Generation)
	assert.Equal(t, 13, cpu.Model)
	assert.Equal(t, 83, cpu.Score)
}

func TestExtractCPUAMD(t *testing.T) {
	cpu, ok := ExtractCPU("AMD 라이젠 7 / 32GB")
	require.True(t, ok)
	assert.Equal(t, BrandAMD, cpu.Brand)
	assert.Equal(t, 7, cpu.Generation)
	assert.Equal(t, 70, cpu.Score)
}

func TestExtractCPUAbsent(t *testing.T) {
	// absent must be distinguishable from a zero-score known CPU
	_, ok := ExtractCPU("미디어텍 프로세서 / 8GB")
	assert.False(t, ok)
}

func TestExtractGPUTiers(t *testing.T) {
	tests := []struct {
		spec  string
		tier  GPUTier
		model int
		score int
	}{
		{"외장그래픽 RTX 4060", TierRTX, 4060, 5060},
		{"GTX 1660 Ti", TierGTX, 1660, 2160},
		{"Radeon RX 7600", TierRadeon, 7600, 8400},
		{"외장그래픽 탑재", TierDiscrete, 0, 100},
	}
	for _, tt := range tests {
		gpu, ok := ExtractGPU(tt.spec)
		require.True(t, ok, "spec %q", tt.spec)
		assert.Equal(t, tt.tier, gpu.Tier, "spec %q", tt.spec)
		assert.Equal(t, tt.model, gpu.Model, "spec %q", tt.spec)
		assert.Equal(t, tt.score, gpu.Score, "spec %q", tt.spec)
	}
}

func TestExtractGPUTierPriority(t *testing.T) {
	// RTX wins over GTX text appearing earlier in the same spec
	gpu, ok := ExtractGPU("GTX 1650 또는 RTX 3050")
	require.True(t, ok)
	assert.Equal(t, TierRTX, gpu.Tier)
	assert.Equal(t, 3050, gpu.Model)
}

func TestExtractGPUIntegratedOnly(t *testing.T) {
	_, ok := ExtractGPU("내장그래픽 / 인텔 Iris Xe")
	assert.False(t, ok)
}

func TestExtractRAMTakesLargest(t *testing.T) {
	ram, ok := ExtractRAM("8GB RAM, 16GB 확장 가능")
	require.True(t, ok)
	assert.Equal(t, 16, ram)
}

func TestExtractRAMAbsent(t *testing.T) {
	_, ok := ExtractRAM("인텔 i5-12세대 / SSD 512")
	assert.False(t, ok)
}

func TestExtractWeight(t *testing.T) {
	w, ok := ExtractWeight("인텔 i7-13세대 / 16GB / 약 1.35kg")
	require.True(t, ok)
	assert.InDelta(t, 1.35, w, 0.001)

	_, ok = ExtractWeight("인텔 i7-13세대 / 16GB")
	assert.False(t, ok)
}
