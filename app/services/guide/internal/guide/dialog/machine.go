package dialog

import "fmt"

// Action tells the caller what to do after a turn has been applied.
type Action int

const (
	// ActionReply: send Turn.Reply as-is, nothing else to compute.
	ActionReply Action = iota
	// ActionRecommend: all slots are filled, run the full recommendation
	// pass (requirement resolution + scoring) atomically within this turn.
	ActionRecommend
	// ActionRescore: a constraint changed after recommendation; rescore the
	// catalog against the cached requirement profile.
	ActionRescore
	// ActionFreeChat: normal follow-up question, answer from the last
	// computed candidates without rescoring.
	ActionFreeChat
)

// Turn is the outcome of feeding one utterance into the machine.
type Turn struct {
	Action Action
	Reply  string
}

// Machine drives the slot-filling conversation. It is stateless; all
// conversation state lives in the Session.
type Machine struct{}

func NewMachine() *Machine {
	return &Machine{}
}

const (
	welcomeReply       = "안녕하세요! PC나 노트북에 대해 궁금한 점이 있으시면 언제든 말씀해주세요. 어떤 제품을 찾고 계신가요?"
	usageRetryReply    = "용도를 좀 더 구체적으로 알려주시면 더 정확한 추천을 드릴 수 있습니다. (게임용, 작업용, 사무용, 인강용 중 선택)"
	budgetAskReply     = "알겠습니다! 예산이 얼마 정도 되시나요? (예: 100만원, 200만원, 300만원 이상 등)"
	budgetRetryReply   = "예산을 숫자로 알려주시겠어요? (예: 150만원, 80)"
	weightAskReply     = "예산을 확인했습니다! 무게에 대한 선호도가 있으신가요? (예: 가벼운 것, 보통, 무거워도 괜찮음)"
	portableAskReply   = "휴대용이 필요하신가요? (예: 네, 아니오)"
	portableAfterReply = "알겠습니다! 휴대용이 필요하신가요? (예: 네, 아니오)"
)

// Advance applies one utterance to the session and returns what to do next.
// An utterance that matches nothing in a slot-filling state re-prompts the
// same question; the machine never errors out of a conversation.
func (m *Machine) Advance(sess *Session, utterance string) Turn {
	switch sess.State {
	case StateIdle:
		return m.onIdle(sess, utterance)
	case StateUsageAsked:
		return m.onUsageAsked(sess, utterance)
	case StateSoftwareAsked:
		return m.onSoftwareAsked(sess, utterance)
	case StateBudgetAsked:
		return m.onBudgetAsked(sess, utterance)
	case StateWeightAsked:
		return m.onWeightAsked(sess, utterance)
	case StatePortableAsked:
		return m.onPortableAsked(sess, utterance)
	case StateProductsRecommended:
		return m.onRecommended(sess, utterance)
	default:
		sess.Reset()
		return Turn{Action: ActionReply, Reply: welcomeReply}
	}
}

func (m *Machine) onIdle(sess *Session, utterance string) Turn {
	category, ok := ClassifyCategory(utterance)
	if !ok {
		return Turn{Action: ActionReply, Reply: welcomeReply}
	}
	sess.Category = category
	sess.State = StateUsageAsked
	return Turn{
		Action: ActionReply,
		Reply: fmt.Sprintf("지금 %s을 찾고 계시네요! 최적의 제품을 추천해드리기 위해 용도가 무엇인지 여쭤봐도 될까요? (예: 게임용, 영상 편집용, 사무용, 인강용)",
			category.Label()),
	}
}

func (m *Machine) onUsageAsked(sess *Session, utterance string) Turn {
	usage, ok := ClassifyUsage(utterance)
	if !ok {
		return Turn{Action: ActionReply, Reply: usageRetryReply}
	}
	sess.Usage = usage
	sess.State = StateSoftwareAsked

	reply := fmt.Sprintf("%s이시군요! 어떤 소프트웨어나 작업을 주로 하시나요?", usage.Label())
	if usage == UsageGaming || usage == UsageWork {
		reply = fmt.Sprintf("%s이시군요! 어떤 게임(또는 소프트웨어)을 주로 사용하시나요? (예: 롤, 배그, 프리미어 프로, 포토샵 등)", usage.Label())
	}
	return Turn{Action: ActionReply, Reply: reply}
}

func (m *Machine) onSoftwareAsked(sess *Session, utterance string) Turn {
	// the utterance is the software name, verbatim
	sess.Software = utterance
	sess.State = StateBudgetAsked
	return Turn{Action: ActionReply, Reply: budgetAskReply}
}

func (m *Machine) onBudgetAsked(sess *Session, utterance string) Turn {
	budget, ok := ParseBudget(utterance)
	if !ok {
		return Turn{Action: ActionReply, Reply: budgetRetryReply}
	}
	sess.Budget = budget

	if sess.Category == CategoryLaptop {
		sess.State = StateWeightAsked
		return Turn{Action: ActionReply, Reply: weightAskReply}
	}
	// desktops skip the weight question
	sess.WeightPref = WeightNormal
	sess.State = StatePortableAsked
	return Turn{Action: ActionReply, Reply: "예산을 확인했습니다! " + portableAskReply}
}

func (m *Machine) onWeightAsked(sess *Session, utterance string) Turn {
	sess.WeightPref = ClassifyWeight(utterance)
	sess.State = StatePortableAsked
	return Turn{Action: ActionReply, Reply: portableAfterReply}
}

func (m *Machine) onPortableAsked(sess *Session, utterance string) Turn {
	if ClassifyYes(utterance) {
		sess.Portable = PortableYes
	} else {
		sess.Portable = PortableNo
	}
	sess.State = StateProductsRecommended
	return Turn{Action: ActionRecommend}
}

// budgetRevisionFloor guards against counting an incidental small number in a
// follow-up utterance as a new budget.
const budgetRevisionFloor = 100000

func (m *Machine) onRecommended(sess *Session, utterance string) Turn {
	changed := WantsRescore(utterance)

	if budget, ok := ParseBudget(utterance); ok && budget != sess.Budget && budget >= budgetRevisionFloor {
		sess.Budget = budget
		changed = true
	}

	if pref, mentioned := classifyWeightRevision(utterance); mentioned && pref != sess.WeightPref {
		sess.WeightPref = pref
		changed = true
	}

	if portable, mentioned := ClassifyPortableRevision(utterance); mentioned && portable != sess.Portable {
		sess.Portable = portable
		changed = true
	}

	if changed {
		return Turn{Action: ActionRescore}
	}
	return Turn{Action: ActionFreeChat}
}

// classifyWeightRevision only reacts to explicit light/heavy wording; a
// follow-up that mentions neither leaves the slot alone.
func classifyWeightRevision(utterance string) (WeightPref, bool) {
	switch ClassifyWeight(utterance) {
	case WeightLight:
		return WeightLight, true
	case WeightHeavyOK:
		return WeightHeavyOK, true
	default:
		return WeightUnknown, false
	}
}
