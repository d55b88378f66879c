package engine

import "context"

// FeedbackClient generates an encouragement message for a journal entry.
// Implementations may call out to an LLM; callers must treat every error as
// soft and fall back to DefaultFeedback.
type FeedbackClient interface {
	GenerateEmotionFeedback(ctx context.Context, emotion Emotion, contextText string) (string, error)
}

// defaultFeedback holds the locally-computed fallback message per emotion,
// used whenever feedback generation fails or no client is configured.
var defaultFeedback = map[Emotion]string{
	EmotionExcited:   "정말 멋져요! 🎉 이런 뿌듯함이 바로 성장의 증거예요. 특히 전화 통화는 많은 사람들이 어려워하는데, 성공적으로 해내신 것이 대단합니다!",
	EmotionHappy:     "행복한 마음이 전해져요! 😊 전화 통화를 무사히 마치신 것만으로도 큰 발전이에요. 작은 성공들이 모여 큰 변화를 만들어내고 있어요.",
	EmotionConfident: "자신감이 느껴져요! 💪 전화 통화에 대한 두려움이 줄어들고 있다는 증거예요. 이런 마음가짐이면 다음 통화는 더 쉬울 거예요.",
	EmotionNervous:   "떨리는 마음으로도 해내신 당신이 정말 대단해요! 😊 전화 공포는 누구나 경험하는 자연스러운 감정이에요. 용기 있는 첫 발걸음이었습니다.",
	EmotionDifficult: "힘들었지만 포기하지 않은 당신을 응원해요! 💪 전화 통화는 연습이 필요한 스킬이에요. 오늘의 경험이 다음번을 더 쉽게 만들어줄 거예요.",
	EmotionAnxious:   "불안함에도 불구하고 도전한 당신이 훌륭해요! 🌟 전화 통화 전 불안한 마음은 당연해요. 미리 할 말을 정리하고 연습하면 다음엔 더 편할 거예요.",
}

// DefaultFeedback returns the built-in encouragement message for an emotion.
func DefaultFeedback(e Emotion) string {
	if msg, ok := defaultFeedback[e]; ok {
		return msg
	}
	return "당신의 도전을 응원합니다! 💪"
}
