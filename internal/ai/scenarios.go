// Package ai provides conversation-practice scenarios and emotion-feedback
// generation, with a canned offline implementation and a Gemini-backed one.
package ai

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"stepquest/internal/engine"
)

// Scenario is a static conversation-practice setup: a counterpart character,
// the system prompt that shapes its replies, and a scripted opening line.
type Scenario struct {
	ID           string
	Title        string
	Description  string
	Character    string
	SystemPrompt string
	OpeningLine  string
}

var scenarios = []Scenario{
	{
		ID:           "cafe_order",
		Title:        "카페에서 주문하기",
		Description:  "카페 직원과 자연스럽게 대화하며 음료를 주문해보세요",
		Character:    "카페 직원",
		SystemPrompt: "당신은 친절한 카페 직원입니다. 고객이 주문을 할 때 자연스럽고 따뜻하게 응대해주세요.",
		OpeningLine:  "안녕하세요! 저희 카페에 오신 것을 환영합니다. 주문하실 음료가 있으신가요?",
	},
	{
		ID:           "hair_salon",
		Title:        "미용실에서 스타일 요청",
		Description:  "미용사에게 원하는 헤어스타일을 설명하고 상담받아보세요",
		Character:    "미용사",
		SystemPrompt: "당신은 경험이 풍부한 미용사입니다. 고객의 요청을 듣고 전문적이면서도 친근하게 상담해주세요.",
		OpeningLine:  "안녕하세요! 오늘은 어떤 스타일로 해드릴까요? 원하시는 느낌이나 길이가 있으시면 말씀해주세요.",
	},
	{
		ID:           "store_inquiry",
		Title:        "매장에서 물건 문의",
		Description:  "매장 직원에게 찾는 물건의 위치나 정보를 물어보세요",
		Character:    "매장 직원",
		SystemPrompt: "당신은 매장의 친절한 직원입니다. 고객의 문의에 도움이 되도록 정확하고 친절하게 안내해주세요.",
		OpeningLine:  "안녕하세요! 무엇을 도와드릴까요? 찾으시는 물건이 있으시면 알려주세요.",
	},
	{
		ID:           "restaurant",
		Title:        "식당에서 주문하기",
		Description:  "식당에서 메뉴를 보고 음식을 주문해보세요",
		Character:    "서빙 직원",
		SystemPrompt: "당신은 식당의 서빙 직원입니다. 메뉴 추천과 주문을 받을 때 친절하게 도와주세요.",
		OpeningLine:  "안녕하세요! 어서오세요. 메뉴 보시고 주문하실 준비가 되시면 말씀해주세요.",
	},
	{
		ID:           "bank",
		Title:        "은행 업무 처리",
		Description:  "은행에서 계좌 개설이나 기타 업무를 처리해보세요",
		Character:    "은행 직원",
		SystemPrompt: "당신은 은행의 직원입니다. 고객의 업무를 전문적이면서도 친절하게 도와주세요.",
		OpeningLine:  "안녕하세요. 오늘 어떤 업무를 도와드릴까요?",
	},
	{
		ID:           "phone_reservation",
		Title:        "전화로 식당 예약하기",
		Description:  "식당에 전화를 걸어 테이블을 예약해보세요. 날짜, 시간, 인원수를 명확히 전달하는 연습을 해보세요",
		Character:    "예약 담당 직원",
		SystemPrompt: "당신은 식당의 예약 담당 직원입니다. 고객이 전화로 예약을 할 때 필요한 정보(날짜, 시간, 인원수, 연락처)를 친절하게 안내하고 확인해주세요. 간혹 원하는 시간이 만석일 수도 있으니 대안을 제시해주세요.",
		OpeningLine:  "네, 안녕하세요. ○○식당입니다. 예약 도와드릴까요?",
	},
	{
		ID:           "phone_delivery",
		Title:        "전화로 배달 주문하기",
		Description:  "치킨이나 피자 등을 전화로 주문해보세요. 메뉴, 주소, 결제방법을 또박또박 말하는 연습을 해보세요",
		Character:    "주문 접수 직원",
		SystemPrompt: "당신은 배달음식점의 주문 받는 직원입니다. 고객이 전화로 주문할 때 메뉴 확인, 주소 확인, 결제방법, 예상 배달시간을 안내해주세요. 메뉴를 잘못 들었거나 주소가 불분명할 때는 다시 확인해주세요.",
		OpeningLine:  "네, 안녕하세요! ○○치킨입니다. 주문 받겠습니다.",
	},
	{
		ID:           "phone_appointment",
		Title:        "전화로 병원 예약하기",
		Description:  "병원에 전화를 걸어 진료 예약을 잡아보세요. 증상과 희망 날짜를 차근차근 설명해보세요",
		Character:    "병원 접수 담당자",
		SystemPrompt: "당신은 병원의 접수 담당자입니다. 환자가 전화로 예약을 할 때 이름, 생년월일, 증상, 희망 날짜와 시간을 확인하고 가능한 예약 시간을 안내해주세요. 초진인지 재진인지도 확인해주세요.",
		OpeningLine:  "네, ○○병원입니다. 진료 예약 도와드릴까요?",
	},
	{
		ID:           "phone_inquiry",
		Title:        "전화로 고객센터 문의하기",
		Description:  "인터넷, 택배, 카드 등의 고객센터에 전화해서 문제를 해결해보세요. 상황을 정리해서 설명하는 연습을 해보세요",
		Character:    "고객센터 상담원",
		SystemPrompt: "당신은 고객센터 상담원입니다. 고객이 전화로 문의할 때 문제 상황을 차근차근 들어보고, 필요한 정보(고객번호, 주소, 상품명 등)를 확인한 후 해결방안을 안내해주세요. 복잡한 경우 단계별로 설명해주세요.",
		OpeningLine:  "안녕하세요. ○○고객센터입니다. 어떤 문의사항이 있으신가요?",
	},
	{
		ID:           "phone_complaint",
		Title:        "전화로 정중하게 컴플레인하기",
		Description:  "서비스에 문제가 있을 때 감정적이지 않고 차분하게 문제를 설명하고 해결을 요청해보세요",
		Character:    "고객센터 상담원",
		SystemPrompt: "당신은 고객센터 상담원입니다. 고객이 불만사항을 제기할 때 공감하며 들어보고, 문제 상황을 정확히 파악한 후 가능한 해결방안을 제시해주세요. 고객이 화가 나더라도 차분하게 응대해주세요.",
		OpeningLine:  "안녕하세요. 고객센터입니다. 불편사항이 있으셨나요? 자세히 말씀해주시면 도와드리겠습니다.",
	},
	{
		ID:           "phone_job_call",
		Title:        "전화로 면접 일정 조율하기",
		Description:  "면접 연락이 왔을 때 침착하게 일정을 조율하고 필요한 정보를 확인해보세요",
		Character:    "인사담당자",
		SystemPrompt: "당신은 회사의 인사담당자입니다. 면접 대상자에게 전화를 걸어 면접 일정을 조율하고, 면접 장소, 준비물, 소요시간 등을 안내해주세요. 지원자가 긴장해하면 친근하게 격려해주세요.",
		OpeningLine:  "안녕하세요. ○○회사 인사팀입니다. 면접 일정 관련해서 연락드렸는데요, 지금 통화 가능하신가요?",
	},
}

// Scenarios returns the full scenario catalog in display order.
func Scenarios() []Scenario {
	return scenarios
}

// ScenarioByID looks up a scenario by id.
func ScenarioByID(id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// CreateSimulation starts a practice session for the given scenario,
// pre-seeded with the scenario's opening line.
func CreateSimulation(scenarioID string) (*engine.Simulation, error) {
	sc, ok := ScenarioByID(scenarioID)
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s", scenarioID)
	}
	now := time.Now().UTC()
	return &engine.Simulation{
		ID:         uuid.NewString(),
		ScenarioID: sc.ID,
		Character:  sc.Character,
		Messages: []engine.ChatMessage{
			{
				ID:        uuid.NewString(),
				Text:      sc.OpeningLine,
				FromUser:  false,
				Timestamp: now,
			},
		},
		StartedAt: now,
	}, nil
}
