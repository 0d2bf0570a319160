package require

import (
	"testing"

	"TechGuideAI/app/services/guide/internal/guide/hwspec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequiredCPUIntel(t *testing.T) {
	cpu, ok := ParseRequiredCPU("권장: Intel Core i5-12400 이상")
	require.True(t, ok)
	assert.Equal(t, hwspec.BrandIntel, cpu.Brand)
	assert.Equal(t, 5, cpu.Generation)
	assert.Equal(t, 12400, cpu.Model)
	assert.Equal(t, 5*10+12400, cpu.Score)
}

func TestParseRequiredCPUAMD(t *testing.T) {
	cpu, ok := ParseRequiredCPU("권장: 라이젠 5 이상")
	require.True(t, ok)
	assert.Equal(t, hwspec.BrandAMD, cpu.Brand)
	assert.Equal(t, 5, cpu.Generation)
	assert.Equal(t, 50, cpu.Score)
}

func TestParseRequiredCPUAbsent(t *testing.T) {
	_, ok := ParseRequiredCPU("쿼드코어 이상이면 충분합니다")
	assert.False(t, ok)
}

func TestParseRequiredGPU(t *testing.T) {
	gpu, ok := ParseRequiredGPU("권장 그래픽: RTX 3060 또는 동급")
	require.True(t, ok)
	assert.Equal(t, hwspec.TierRTX, gpu.Tier)
	assert.Equal(t, 3060, gpu.Model)
}

func TestParseRequiredGPUDiscreteKeywordIsNotARequirement(t *testing.T) {
	_, ok := ParseRequiredGPU("외장그래픽 권장")
	assert.False(t, ok)
}

func TestParseRequiredRAM(t *testing.T) {
	ram, ok := ParseRequiredRAM("권장 사양: 16GB RAM 이상")
	require.True(t, ok)
	assert.Equal(t, 16, ram)

	ram, ok = ParseRequiredRAM("8GB 메모리")
	require.True(t, ok)
	assert.Equal(t, 8, ram)
}

func TestParseRequiredRAMNeedsMemoryWord(t *testing.T) {
	// a bare capacity (e.g. VRAM or SSD) is not a RAM requirement
	_, ok := ParseRequiredRAM("SSD 512GB")
	assert.False(t, ok)
}
