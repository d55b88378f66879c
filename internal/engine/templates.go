package engine

// Template is a static quest blueprint. Quests are generated from templates;
// the template pool itself never changes at runtime.
type Template struct {
	Title       string
	Description string
	Difficulty  Difficulty
	Reward      Reward
	// PlaceTypes lists place-type affinities for location resolution, most
	// preferred first.
	PlaceTypes []string
}

// questTemplates is the per-category template pool. Copy is user-facing
// Korean text and is treated as opaque.
var questTemplates = map[Category][]Template{
	CategoryNearby: {
		{
			Title:       `편의점에서 "봉투 필요 없어요" 말하기`,
			Description: "환경을 생각하는 작은 실천! 편의점에서 물건을 살 때 봉투를 거절해보세요.",
			Difficulty:  DifficultyEasy,
			Reward:      Reward{SocialExp: 10, CourageExp: 5},
			PlaceTypes:  []string{"convenience_store"},
		},
		{
			Title:       "카페에서 직접 주문하기",
			Description: `키오스크 대신 직접 점원에게 주문해보세요. 간단한 "안녕하세요"부터 시작!`,
			Difficulty:  DifficultyEasy,
			Reward:      Reward{SocialExp: 15, CourageExp: 10},
			PlaceTypes:  []string{"cafe"},
		},
		{
			Title:       "마트에서 직원에게 물건 위치 물어보기",
			Description: `"○○이 어디에 있나요?" 라고 직원에게 물어보세요.`,
			Difficulty:  DifficultyMedium,
			Reward:      Reward{SocialExp: 20, CourageExp: 15},
			PlaceTypes:  []string{"supermarket", "mart"},
		},
	},
	CategoryInteraction: {
		{
			Title:       `서점에서 "베스트셀러 코너 어디예요?" 질문하기`,
			Description: "서점 직원에게 베스트셀러 코너 위치를 물어보세요.",
			Difficulty:  DifficultyMedium,
			Reward:      Reward{SocialExp: 25, CourageExp: 20},
			PlaceTypes:  []string{"book_store"},
		},
		{
			Title:       "버스 기사님께 인사하기",
			Description: `버스에 탈 때 "안녕하세요"라고 인사해보세요.`,
			Difficulty:  DifficultyEasy,
			Reward:      Reward{SocialExp: 15, CourageExp: 25},
			PlaceTypes:  []string{"bus_station"},
		},
		{
			Title:       "은행에서 번호표 뽑고 순서 기다리기",
			Description: "은행 업무를 직접 처리해보세요. 차근차근 순서를 따라가면 됩니다.",
			Difficulty:  DifficultyMedium,
			Reward:      Reward{SocialExp: 30, CourageExp: 25},
			PlaceTypes:  []string{"bank"},
		},
	},
	CategoryCourage: {
		{
			Title:       "음식점에서 혼밥하기",
			Description: "혼자서도 당당하게! 좋아하는 음식점에서 혼밥을 즐겨보세요.",
			Difficulty:  DifficultyHard,
			Reward:      Reward{SocialExp: 40, CourageExp: 50},
			PlaceTypes:  []string{"restaurant"},
		},
		{
			Title:       "미용실에서 원하는 헤어스타일 요청하기",
			Description: "미용사에게 구체적으로 원하는 스타일을 설명해보세요.",
			Difficulty:  DifficultyHard,
			Reward:      Reward{SocialExp: 35, CourageExp: 45},
			PlaceTypes:  []string{"hair_salon"},
		},
		{
			Title:       "카페에서 음료 맞춤 주문하기",
			Description: `"얼음 적게", "시럽 추가" 등 원하는 대로 주문해보세요.`,
			Difficulty:  DifficultyMedium,
			Reward:      Reward{SocialExp: 25, CourageExp: 30},
			PlaceTypes:  []string{"cafe"},
		},
	},
	CategorySocial: {
		{
			Title:       "길에서 길 물어보기",
			Description: "지나가는 사람에게 정중하게 길을 물어보세요.",
			Difficulty:  DifficultyExpert,
			Reward:      Reward{SocialExp: 50, CourageExp: 40},
			PlaceTypes:  []string{"street"},
		},
		{
			Title:       "상점에서 가격 문의하기",
			Description: `"이거 얼마예요?" 라고 물어보세요.`,
			Difficulty:  DifficultyMedium,
			Reward:      Reward{SocialExp: 30, CourageExp: 25},
			PlaceTypes:  []string{"store"},
		},
	},
}

// TemplatesForCategory returns the static template pool for a category.
func TemplatesForCategory(c Category) []Template {
	return questTemplates[c]
}
