package require

import (
	"context"
	"fmt"
	"strings"

	"TechGuideAI/app/services/guide/internal/guide/hwspec"

	"github.com/zeromicro/go-zero/core/logx"
)

// Profile is the normalized hardware requirement for one piece of software.
// Nil CPU/GPU and zero RAMGB mean the requirement could not be determined;
// scoring then degrades to a requirement-free mode. Profiles are immutable
// after creation and cached per session.
type Profile struct {
	CPU            *hwspec.CpuSpec
	RAMGB          int
	GPU            *hwspec.GpuSpec
	RawDescription string
}

// Searcher is the external web-search collaborator. Implementations return at
// most a handful of unstructured text snippets; no structure, language, or
// HTML-freeness is assumed.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

const queryTemplate = "%s 시스템 요구사항 권장 사양 CPU RAM GPU"

// Resolver looks up the recommended system requirements for a software name.
type Resolver struct {
	searcher Searcher
}

func NewResolver(searcher Searcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// Resolve queries the search collaborator and assembles a Profile. Search
// failure is not an error to the caller: an empty profile comes back and the
// conversation carries on without requirement anchoring.
func (r *Resolver) Resolve(ctx context.Context, softwareName string) *Profile {
	log := logx.WithContext(ctx)
	profile := &Profile{}

	if r == nil || r.searcher == nil {
		return profile
	}

	snippets, err := r.searcher.Search(ctx, fmt.Sprintf(queryTemplate, softwareName))
	if err != nil {
		log.Errorf("requirement search failed for %q: %v", softwareName, err)
		return profile
	}

	profile.RawDescription = strings.Join(snippets, " ")
	if profile.RawDescription == "" {
		return profile
	}

	if cpu, ok := ParseRequiredCPU(profile.RawDescription); ok {
		profile.CPU = &cpu
	}
	if gpu, ok := ParseRequiredGPU(profile.RawDescription); ok {
		profile.GPU = &gpu
	}
	if ram, ok := ParseRequiredRAM(profile.RawDescription); ok {
		profile.RAMGB = ram
	}

	log.Infow("requirement profile resolved",
		logx.Field("software", softwareName),
		logx.Field("cpu", profile.CPU != nil),
		logx.Field("gpu", profile.GPU != nil),
		logx.Field("ramGB", profile.RAMGB))
	return profile
}
