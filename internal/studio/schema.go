package studio

// moduleResponseSchema is the structured-output constraint sent with the
// module generation request. It mirrors the ModuleData contract so the
// provider returns parseable JSON rather than prose.
func moduleResponseSchema() map[string]any {
	stringProp := map[string]any{"type": "STRING"}

	quizQuestion := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"question":    stringProp,
			"options":     map[string]any{"type": "ARRAY", "items": stringProp},
			"answer":      stringProp,
			"explanation": stringProp,
		},
		"required": []string{"question", "options", "answer", "explanation"},
	}

	flashcard := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"front": stringProp,
			"back":  stringProp,
		},
		"required": []string{"front", "back"},
	}

	concept := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"title":        stringProp,
			"summary":      stringProp,
			"story_scene":  stringProp,
			"image_prompt": stringProp,
			"quiz":         map[string]any{"type": "ARRAY", "items": quizQuestion},
			"flashcards":   map[string]any{"type": "ARRAY", "items": flashcard},
			"badge": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"name":        stringProp,
					"description": stringProp,
				},
				"required": []string{"name", "description"},
			},
			"narration": stringProp,
			"problem_solving_challenge": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"scenario": stringProp,
					"task":     stringProp,
				},
				"required": []string{"scenario", "task"},
			},
		},
		"required": []string{
			"title", "summary", "story_scene", "image_prompt",
			"quiz", "flashcards", "badge", "narration", "problem_solving_challenge",
		},
	}

	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"simple_summary": stringProp,
			"visual_task": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"term":         stringProp,
						"image_prompt": stringProp,
					},
					"required": []string{"term", "image_prompt"},
				},
			},
			"concepts": map[string]any{"type": "ARRAY", "items": concept},
		},
		"required": []string{"simple_summary", "visual_task", "concepts"},
	}
}
