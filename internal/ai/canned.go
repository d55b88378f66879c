package ai

import (
	"context"
	"math/rand"
	"time"

	"stepquest/internal/engine"
)

// cannedReplies are generic counterpart responses used when no live model is
// configured.
var cannedReplies = []string{
	"네, 좋은 선택이네요! 다른 것도 필요하신가요?",
	"그렇게 해드릴게요. 잠시만 기다려주세요.",
	"혹시 다른 궁금한 점이 있으시면 언제든 말씀해주세요.",
	"네, 알겠습니다. 그럼 이렇게 진행해드릴게요.",
	"좋은 생각이에요! 그 방법으로 해보시죠.",
}

// cannedFeedback mirrors the richer per-emotion feedback variants the live
// model would produce; one is picked per request.
var cannedFeedback = map[engine.Emotion][]string{
	engine.EmotionExcited: {
		"정말 멋져요! 🎉 이런 뿌듯함이 바로 성장의 증거예요. 특히 전화 통화는 많은 사람들이 어려워하는데, 성공적으로 해내신 것이 대단합니다!",
		"와! 정말 잘하셨네요! 😊 전화로 대화하는 것이 점점 더 자연스러워지고 있어요. 이런 성취감을 계속 쌓아가세요!",
		"훌륭합니다! ✨ 전화 공포를 이겨내고 성공한 경험이 앞으로 더 큰 자신감이 될 거예요!",
	},
	engine.EmotionHappy: {
		"행복한 마음이 전해져요! 😊 전화 통화를 무사히 마치신 것만으로도 큰 발전이에요. 작은 성공들이 모여 큰 변화를 만들어내고 있어요.",
		"기쁜 마음이 느껴져요! 🌟 전화로 소통하는 것이 생각보다 어렵지 않다는 것을 경험하셨겠네요.",
		"정말 뿌듯하셨을 것 같아요! 💝 전화 한 통으로 문제를 해결하는 경험은 분명 자신감을 키워줄 거예요.",
	},
	engine.EmotionConfident: {
		"자신감이 느껴져요! 💪 전화 통화에 대한 두려움이 줄어들고 있다는 증거예요. 이런 마음가짐이면 다음 통화는 더 쉬울 거예요.",
		"당당하게 해내셨네요! 😎 전화로 할 말을 또박또박 전달하는 것은 정말 중요한 스킬이에요.",
		"자신있게 통화하시는 모습이 멋져요! ⭐ 이제 전화가 더 이상 두렵지 않을 거예요.",
	},
	engine.EmotionNervous: {
		"떨리는 마음으로도 해내신 당신이 정말 대단해요! 😊 전화 공포는 누구나 경험하는 자연스러운 감정이에요. 용기 있는 첫 발걸음이었습니다.",
		"긴장하셨지만 끝까지 해내셨네요! 💪 처음엔 누구나 떨려요. 하지만 경험이 쌓일수록 편해질 거예요.",
		"떨렸지만 포기하지 않은 것이 중요해요! 🌟 다음번엔 조금 더 수월할 거예요. 차근차근 연습해보세요.",
	},
	engine.EmotionDifficult: {
		"힘들었지만 포기하지 않은 당신을 응원해요! 💪 전화 통화는 연습이 필요한 스킬이에요. 오늘의 경험이 다음번을 더 쉽게 만들어줄 거예요.",
		"어려우셨지만 끝까지 해내셨네요! 🌟 전화로 의사소통하는 것은 많은 사람들이 어려워해요. 조금씩 늘어가고 있어요.",
		"힘든 과정이었지만 성장하고 계세요! ✨ 전화 대화 스킬은 하루아침에 늘지 않아요. 꾸준히 연습하면 분명 편해질 거예요.",
	},
	engine.EmotionAnxious: {
		"불안함에도 불구하고 도전한 당신이 훌륭해요! 🌟 전화 통화 전 불안한 마음은 당연해요. 미리 할 말을 정리하고 연습하면 다음엔 더 편할 거예요.",
		"걱정이 많으셨지만 해내셨네요! 😊 전화 공포증은 충분히 극복할 수 있어요. 작은 성공을 쌓아가고 계시는 중이에요.",
		"불안했지만 용기를 내셨군요! 💝 전화 통화가 생각보다 괜찮다는 것을 느끼셨을 거예요. 조금씩 자신감을 키워가세요.",
	},
}

// Canned is an offline client: replies and feedback are picked from fixed
// lists by an injected rand source so tests can fix the seed.
type Canned struct {
	rng *rand.Rand
}

func NewCanned(rng *rand.Rand) *Canned {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Canned{rng: rng}
}

// Reply returns the counterpart's next line for a practice conversation.
func (c *Canned) Reply(ctx context.Context, sim *engine.Simulation, userText string) (string, error) {
	return cannedReplies[c.rng.Intn(len(cannedReplies))], nil
}

// GenerateEmotionFeedback satisfies engine.FeedbackClient.
func (c *Canned) GenerateEmotionFeedback(ctx context.Context, emotion engine.Emotion, contextText string) (string, error) {
	variants, ok := cannedFeedback[emotion]
	if !ok {
		variants = cannedFeedback[engine.EmotionConfident]
	}
	return variants[c.rng.Intn(len(variants))], nil
}
