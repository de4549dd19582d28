package gateway

import "github.com/asadk/hikmah/internal/llm"

// ayahSchema constrains verse responses to a list of fully annotated ayahs.
var ayahSchema = &llm.Schema{
	Name:        "ayah-range",
	Description: "A run of Quran verses with transliteration and translation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ayahs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"numberInSurah": map[string]any{"type": "integer"},
						"text": map[string]any{
							"type":        "string",
							"description": "The Arabic text of the Ayah in Uthmani script (Hafs)",
						},
						"transliteration": map[string]any{
							"type":        "string",
							"description": "Clear Latin transliteration",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "English translation (Sahih International or similar)",
						},
					},
					"required": []any{"numberInSurah", "text", "transliteration", "translation"},
				},
			},
		},
		"required": []any{"ayahs"},
	},
}

// hadithSchema constrains hadith responses to graded narrations.
var hadithSchema = &llm.Schema{
	Name:        "hadith-list",
	Description: "Authentic hadiths with sources and grades",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hadiths": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"source": map[string]any{
							"type":        "string",
							"description": "e.g., Sahih Bukhari, Sahih Muslim, Abu Dawood",
						},
						"narrator": map[string]any{"type": "string"},
						"arabic":   map[string]any{"type": "string"},
						"english":  map[string]any{"type": "string"},
						"grade": map[string]any{
							"type":        "string",
							"description": "Must be Sahih or Hasan",
						},
						"topics": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"source", "arabic", "english", "grade"},
				},
			},
		},
		"required": []any{"hadiths"},
	},
}

// quizSchema constrains quiz responses to four-option questions.
var quizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "Multiple-choice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Array of 4 possible answers",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"description": "Index of the correct answer (0-3)",
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required": []any{"question", "options", "correctAnswer", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// moodAyahSchema constrains mood responses to a single annotated verse.
var moodAyahSchema = &llm.Schema{
	Name:        "mood-ayah",
	Description: "One verse chosen to suit the reader's mood",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"surah":       map[string]any{"type": "integer"},
			"ayah":        map[string]any{"type": "integer"},
			"surahName":   map[string]any{"type": "string"},
			"text":        map[string]any{"type": "string"},
			"translation": map[string]any{"type": "string"},
			"relevance": map[string]any{
				"type":        "string",
				"description": "One sentence on why this verse fits the mood",
			},
		},
		"required": []any{"surah", "ayah", "surahName", "text", "translation", "relevance"},
	},
}
