package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/asadk/hikmah/internal/llm"
)

// Fallback texts shown when the completion service is unreachable or
// returns nothing usable. Free-text features report these instead of errors.
const (
	scholarFallback = "I apologize, I could not generate an answer at this time."
	tafsirFallback  = "No Tafsir available."
	dreamFallback   = "Could not interpret."
	halalFallback   = "Could not analyze."
)

// quizTopics is the pool a quiz round draws from.
var quizTopics = []string{
	"Prophets of Islam",
	"The Seerah of Prophet Muhammad (PBUH)",
	"Hanafi Fiqh of Prayer",
	"Quranic Stories",
	"Companions (Sahaba)",
	"Islamic History (Caliphates)",
	"Pillars of Islam",
}

// Service adapts the completion client to the app's features. Every method
// degrades to an empty or neutral value on failure; callers never see
// provider errors.
type Service struct {
	client llm.Client

	// pickTopic is swappable for deterministic tests.
	pickTopic func() string
}

// NewService creates a Service on top of the given client.
func NewService(client llm.Client) *Service {
	return &Service{
		client: client,
		pickTopic: func() string {
			return quizTopics[rand.IntN(len(quizTopics))]
		},
	}
}

// ChapterVerses fetches verses start through start+count-1 of the given
// surah. Returns an empty slice on any failure.
func (s *Service) ChapterVerses(ctx context.Context, surah, start, count int) []Ayah {
	ctx = llm.WithPurpose(ctx, "quran.verses")

	prompt := fmt.Sprintf(
		"Retrieve verses %d to %d of Surah number %d.\n"+
			"Provide:\n"+
			"1. Accurate Arabic text (Uthmani Hafs).\n"+
			"2. Clear Latin Transliteration.\n"+
			"3. English Translation.",
		start, start+count-1, surah)

	res, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		Schema:    ayahSchema,
		MaxTokens: 4096,
	})
	if err != nil {
		return nil
	}

	var payload struct {
		Ayahs []Ayah `json:"ayahs"`
	}
	if err := json.Unmarshal(res.Text, &payload); err != nil {
		return nil
	}

	for i := range payload.Ayahs {
		payload.Ayahs[i].Surah = surah
	}
	return payload.Ayahs
}

// Hadiths fetches five authentic narrations on the given topic, graded per
// the Hanafi madhab. Returns an empty slice on any failure.
func (s *Service) Hadiths(ctx context.Context, topic string) []Hadith {
	ctx = llm.WithPurpose(ctx, "hadith.topic")

	if topic == "" {
		topic = "general"
	}

	prompt := fmt.Sprintf(
		"Provide 5 authentic Sunni Hadiths related to %q that are widely accepted in the Hanafi Madhab.\n"+
			"Sources must be primarily Kutub al-Sittah (Bukhari, Muslim, etc.).\n"+
			"Ensure the fiqh implications match Hanafi understanding where applicable.\n"+
			"Return Arabic text and English translation.",
		topic)

	res, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		Schema:    hadithSchema,
		MaxTokens: 4096,
	})
	if err != nil {
		return nil
	}

	var payload struct {
		Hadiths []Hadith `json:"hadiths"`
	}
	if err := json.Unmarshal(res.Text, &payload); err != nil {
		return nil
	}

	for i := range payload.Hadiths {
		payload.Hadiths[i].ID = uuid.New().String()
	}
	return payload.Hadiths
}

const scholarSystem = `You are a knowledgeable Sunni Hanafi Islamic scholar.
You MUST strictly follow this output format for every response:

PART 1: A direct, bold answer, maximum 2 sentences.
PART 2: A detailed explanation with evidence (Dalil) and reasoning.

Separate PART 1 and PART 2 with exactly three vertical bars: |||

Example:
Yes, it is permissible to do so provided certain conditions are met.|||The reasoning comes from the Hadith...`

// AskScholar answers a fiqh question in verdict-plus-detail format. On
// failure it returns an apology in place of the detail.
func (s *Service) AskScholar(ctx context.Context, question string) (verdict, detail string) {
	ctx = llm.WithPurpose(ctx, "scholar.ask")

	res, err := s.client.Complete(ctx, llm.Request{
		System:    scholarSystem,
		Prompt:    question,
		MaxTokens: 2048,
	})
	if err != nil || len(res.Text) == 0 {
		return "", scholarFallback
	}

	return SplitAnswer(string(res.Text))
}

// SplitAnswer separates a scholar reply into its short verdict and detailed
// explanation. A reply without the separator is all detail. Extra separators
// fold into the detail.
func SplitAnswer(text string) (verdict, detail string) {
	parts := strings.SplitN(text, "|||", 2)
	if len(parts) == 1 {
		return "", strings.TrimSpace(text)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// Tafsir explains one verse using orthodox Sunni commentary.
func (s *Service) Tafsir(ctx context.Context, surah, ayah int) string {
	ctx = llm.WithPurpose(ctx, "quran.tafsir")

	prompt := fmt.Sprintf(
		"Explain Surah %d, Ayah %d using Sunni Tafsir (Ibn Kathir/Jalalayn). "+
			"Keep it strictly within orthodox Sunni understanding.",
		surah, ayah)

	res, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		MaxTokens: 1024,
	})
	if err != nil || len(res.Text) == 0 {
		return tafsirFallback
	}
	return string(res.Text)
}

// Quiz generates five questions on a randomly chosen topic. Returns an empty
// slice on any failure.
func (s *Service) Quiz(ctx context.Context) []QuizQuestion {
	ctx = llm.WithPurpose(ctx, "quiz.generate")

	prompt := fmt.Sprintf(
		"Generate 5 unique multiple-choice questions specifically about: %s.\n"+
			"Make them challenging and educational.\n"+
			"Avoid generic questions like 'What is the holy book of Islam'.",
		s.pickTopic())

	res, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		Schema:    quizSchema,
		MaxTokens: 4096,
	})
	if err != nil {
		return nil
	}

	var payload struct {
		Questions []QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal(res.Text, &payload); err != nil {
		return nil
	}
	return payload.Questions
}

// InterpretDream gives an Islamic reading of a dream description.
func (s *Service) InterpretDream(ctx context.Context, dream string) string {
	ctx = llm.WithPurpose(ctx, "dream.interpret")

	prompt := fmt.Sprintf(
		"Interpret this dream from an Islamic perspective (Sunni/Ibn Sirin): %q.\n"+
			"Disclaimer: Start with \"Interpretation of dreams is subjective...\"",
		dream)

	res, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		MaxTokens: 1024,
	})
	if err != nil || len(res.Text) == 0 {
		return dreamFallback
	}
	return string(res.Text)
}

// CheckHalal analyzes an ingredient or food for halal status.
func (s *Service) CheckHalal(ctx context.Context, query string) string {
	ctx = llm.WithPurpose(ctx, "halal.check")

	prompt := fmt.Sprintf(
		"Analyze this ingredient/food for Halal status: %q.\n"+
			"Highlight any haram ingredients (alcohol, pork, non-zabiha meat derivatives).\n"+
			"Verdict: Halal, Haram, or Mushbooh (Doubtful).",
		query)

	res, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		MaxTokens: 1024,
	})
	if err != nil || len(res.Text) == 0 {
		return halalFallback
	}
	return string(res.Text)
}

// AyahForMood picks one verse suited to how the reader feels. Returns nil on
// any failure.
func (s *Service) AyahForMood(ctx context.Context, mood string) *MoodAyah {
	ctx = llm.WithPurpose(ctx, "quran.mood")

	prompt := fmt.Sprintf(
		"Choose one Quran verse that speaks to someone feeling %q.\n"+
			"Give the Arabic text, an English translation, and one sentence on why it fits.",
		mood)

	res, err := s.client.Complete(ctx, llm.Request{
		Prompt:    prompt,
		Schema:    moodAyahSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil
	}

	var out MoodAyah
	if err := json.Unmarshal(res.Text, &out); err != nil {
		return nil
	}
	return &out
}
