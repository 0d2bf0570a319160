// Package dialog implements the slot-filling conversation state machine that
// collects a buyer's constraints one turn at a time.
package dialog

// State is the conversation position. Each slot-filling state owns exactly
// one question; ProductsRecommended self-loops for revisions and free chat.
type State int

const (
	StateIdle State = iota
	StateUsageAsked
	StateSoftwareAsked
	StateBudgetAsked
	StateWeightAsked
	StatePortableAsked
	StateProductsRecommended
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUsageAsked:
		return "usage_asked"
	case StateSoftwareAsked:
		return "software_asked"
	case StateBudgetAsked:
		return "budget_asked"
	case StateWeightAsked:
		return "weight_asked"
	case StatePortableAsked:
		return "portable_asked"
	case StateProductsRecommended:
		return "products_recommended"
	default:
		return "unknown"
	}
}

// Category is the product kind the user shops for.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryLaptop
	CategoryDesktop
)

func (c Category) Label() string {
	switch c {
	case CategoryLaptop:
		return "노트북"
	case CategoryDesktop:
		return "데스크탑"
	default:
		return ""
	}
}

// Usage is the declared purpose of the machine.
type Usage int

const (
	UsageUnknown Usage = iota
	UsageGaming
	UsageWork
	UsageOffice
	UsageLecture
)

func (u Usage) Label() string {
	switch u {
	case UsageGaming:
		return "게임용"
	case UsageWork:
		return "작업용"
	case UsageOffice:
		return "사무용"
	case UsageLecture:
		return "인강용"
	default:
		return ""
	}
}

// WeightPref is the laptop weight preference slot.
type WeightPref int

const (
	WeightUnknown WeightPref = iota
	WeightLight
	WeightNormal
	WeightHeavyOK
)

func (w WeightPref) Label() string {
	switch w {
	case WeightLight:
		return "가벼운"
	case WeightNormal:
		return "보통"
	case WeightHeavyOK:
		return "무거워도됨"
	default:
		return "무관"
	}
}

// Portable is a tri-state slot: unset until the portability question is
// answered.
type Portable int

const (
	PortableUnknown Portable = iota
	PortableYes
	PortableNo
)

// Session accumulates the slot values for one conversation. It is mutated
// exclusively by the Machine and read by the scoring pass; one utterance is
// processed to completion before the next is accepted.
type Session struct {
	ID         int64
	State      State
	Category   Category
	Usage      Usage
	Software   string
	Budget     int64 // won, 0 = not set
	WeightPref WeightPref
	Portable   Portable
}

func NewSession(id int64) *Session {
	return &Session{ID: id, State: StateIdle}
}

// Reset returns the session to a fresh Idle state with all slots cleared.
func (s *Session) Reset() {
	id := s.ID
	*s = Session{ID: id, State: StateIdle}
}
