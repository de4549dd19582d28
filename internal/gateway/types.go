package gateway

// Ayah is one verse as returned by the completion service.
type Ayah struct {
	Surah           int    `json:"surah"`
	NumberInSurah   int    `json:"numberInSurah"`
	Text            string `json:"text"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
}

// Hadith is one narration with its source and authenticity grade.
type Hadith struct {
	ID       string   `json:"id"`
	Source   string   `json:"source"`
	Narrator string   `json:"narrator,omitempty"`
	Arabic   string   `json:"arabic"`
	English  string   `json:"english"`
	Grade    string   `json:"grade"`
	Topics   []string `json:"topics,omitempty"`
}

// QuizQuestion is one multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// MoodAyah is a verse picked to match how the reader feels.
type MoodAyah struct {
	Surah       int    `json:"surah"`
	Ayah        int    `json:"ayah"`
	SurahName   string `json:"surahName"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
	Relevance   string `json:"relevance"`
}

// ChatRole identifies the speaker of a scholar chat message.
type ChatRole string

const (
	RoleUser    ChatRole = "user"
	RoleScholar ChatRole = "scholar"
)

// ChatMessage is one entry in the scholar conversation history.
type ChatMessage struct {
	Role    ChatRole
	Verdict string // short bold answer, scholar messages only
	Detail  string // full explanation, or the user's question text
}
