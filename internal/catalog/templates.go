package catalog

import "github.com/musekit/muse/internal/models"

func num(v float64) *float64 { return &v }

// builtinTemplates declares every content template. Declaration order is
// display order; parameter order is both form order and prompt-assembly
// order. The prompt scaffolds live in internal/renderer keyed by id.
func builtinTemplates() []*models.Template {
	return []*models.Template{
		// Story templates
		{
			ID:                "story-general",
			Name:              "General Short Story",
			Category:          models.CategoryStory,
			Description:       "Craft a short story based on genre, characters, and plot points.",
			SystemInstruction: "You are a creative storyteller. Your goal is to write engaging and imaginative short stories.",
			Parameters: []models.ParameterSpec{
				{ID: "genre", Label: "Genre", Kind: models.KindShortText, DefaultValue: "Fantasy",
					Validation: &models.ValidationRule{Required: true}},
				{ID: "protagonist", Label: "Protagonist (e.g., A weary detective, a curious alien)", Kind: models.KindLongText,
					Placeholder: "Describe the main character",
					Validation:  &models.ValidationRule{Required: true, MinLength: 10}},
				{ID: "setting", Label: "Setting (e.g., A futuristic city, a haunted mansion)", Kind: models.KindShortText,
					Placeholder: "Where does the story take place?"},
				{ID: "plot_hook", Label: "Plot Hook (e.g., A mysterious message, a sudden disappearance)", Kind: models.KindLongText,
					Placeholder: "What kicks off the story?",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "tone", Label: "Tone (e.g., suspenseful, humorous, melancholic)", Kind: models.KindShortText,
					DefaultValue: "engaging"},
				{ID: "length_words", Label: "Approx. Word Count", Kind: models.KindNumber, DefaultValue: "300",
					Validation: &models.ValidationRule{Min: num(50), Max: num(1500)}},
			},
		},
		{
			ID:                "story-flash-fiction",
			Name:              "Flash Fiction Challenge",
			Category:          models.CategoryStory,
			Description:       "Write a very short story (e.g., 100-200 words) based on a single concept.",
			SystemInstruction: "You are a master of concise storytelling. Craft a complete and impactful flash fiction piece.",
			Parameters: []models.ParameterSpec{
				{ID: "concept", Label: "Core Concept/Image", Kind: models.KindShortText,
					Placeholder: "e.g., A clock that ticks backwards, a city made of glass",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "word_limit", Label: "Word Limit", Kind: models.KindNumber, DefaultValue: "150",
					Validation: &models.ValidationRule{Min: num(50), Max: num(300)}},
				{ID: "desired_emotion", Label: "Desired Emotion (optional)", Kind: models.KindShortText,
					Placeholder: "e.g., Mysterious, hopeful, unsettling"},
			},
		},
		{
			ID:                "story-dialogue-scene",
			Name:              "Dialogue Scene",
			Category:          models.CategoryStory,
			Description:       "Create a short scene driven primarily by dialogue between two characters.",
			SystemInstruction: "You are a playwright. Write a compelling dialogue scene that reveals character and advances a situation.",
			Parameters: []models.ParameterSpec{
				{ID: "character_a_desc", Label: "Character A Description", Kind: models.KindShortText,
					Placeholder: "e.g., A nervous young inventor",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "character_b_desc", Label: "Character B Description", Kind: models.KindShortText,
					Placeholder: "e.g., A skeptical investor",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "scenario", Label: "Scenario/Conflict", Kind: models.KindLongText,
					Placeholder: "e.g., Character A is pitching a wild idea to Character B",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "setting_brief", Label: "Brief Setting (optional)", Kind: models.KindShortText,
					Placeholder: "e.g., A cluttered workshop, a sterile office"},
			},
		},
		{
			ID:                "story-twist-ending",
			Name:              "Twist Ending Story",
			Category:          models.CategoryStory,
			Description:       "Craft a short story with an unexpected twist at the end.",
			SystemInstruction: "You are a master of suspense and surprise endings. Write a story that cleverly subverts expectations.",
			Parameters: []models.ParameterSpec{
				{ID: "genre", Label: "Genre", Kind: models.KindShortText, DefaultValue: "Mystery",
					Validation: &models.ValidationRule{Required: true}},
				{ID: "initial_setup", Label: "Initial Setup/Premise", Kind: models.KindLongText,
					Placeholder: "Briefly describe the beginning of the story",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "protagonist_goal", Label: "Protagonist's Initial Goal", Kind: models.KindShortText,
					Placeholder: "e.g., To solve a crime, to find a hidden object",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "length_words", Label: "Approx. Word Count", Kind: models.KindNumber, DefaultValue: "400",
					Validation: &models.ValidationRule{Min: num(100), Max: num(1000)}},
			},
		},
		{
			ID:                "story-historical-snippet",
			Name:              "Historical Fiction Snippet",
			Category:          models.CategoryStory,
			Description:       "Write a brief scene set in a specific historical period, focusing on a character's experience.",
			SystemInstruction: "You are a historical fiction author. Transport the reader to another time with vivid details and authentic character voices.",
			Parameters: []models.ParameterSpec{
				{ID: "historical_period", Label: "Historical Period & Location", Kind: models.KindShortText,
					Placeholder: "e.g., Ancient Rome, 1920s Paris",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "character_role", Label: "Character Role/Perspective", Kind: models.KindShortText,
					Placeholder: "e.g., A legionary, a flapper, a peasant",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "key_event_or_detail", Label: "Focus Event or Detail", Kind: models.KindLongText,
					Placeholder: "e.g., A local festival, the arrival of news, a daily chore",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "desired_mood", Label: "Desired Mood", Kind: models.KindShortText, DefaultValue: "atmospheric",
					Validation: &models.ValidationRule{Required: true}},
			},
		},

		// Poem templates
		{
			ID:                "haiku-poem",
			Name:              "Haiku Poem",
			Category:          models.CategoryPoem,
			Description:       "Generate a haiku (5-7-5 syllables) on a given topic.",
			SystemInstruction: "You are a poet specializing in Japanese forms. You craft beautiful and evocative haikus.",
			Parameters: []models.ParameterSpec{
				{ID: "topic", Label: "Topic", Kind: models.KindShortText,
					Placeholder: "e.g., Autumn, Silence, Ocean",
					Validation:  &models.ValidationRule{Required: true}},
			},
		},
		{
			ID:                "limerick-poem",
			Name:              "Limerick Poem",
			Category:          models.CategoryPoem,
			Description:       "Create a humorous limerick with an AABBA rhyming scheme.",
			SystemInstruction: "You are a witty limerick writer. Your limericks are known for their humor and clever rhymes.",
			Parameters: []models.ParameterSpec{
				{ID: "subject_name", Label: "Subject's Name (optional)", Kind: models.KindShortText,
					Placeholder: "e.g., Stan, a cat from Japan"},
				{ID: "subject_description", Label: "Subject Description", Kind: models.KindLongText,
					Placeholder: "e.g., A curious young man from Peru, A baker with skills quite askew",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "action_or_quirk", Label: "Action or Quirk", Kind: models.KindLongText,
					Placeholder: "e.g., Who loved to dance in the dew, Whose cakes often turned blue",
					Validation:  &models.ValidationRule{Required: true}},
			},
		},
		{
			ID:                "poem-thematic",
			Name:              "Thematic Poem",
			Category:          models.CategoryPoem,
			Description:       "Generate a poem based on a theme, style, and desired length.",
			SystemInstruction: "You are an accomplished poet. You craft verses that resonate with emotion and imagery.",
			Parameters: []models.ParameterSpec{
				{ID: "theme", Label: "Theme", Kind: models.KindShortText,
					Placeholder: "e.g., Hope, Loss, Nature's beauty",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "style", Label: "Poetic Style (e.g., Free verse, rhyming couplets, narrative)", Kind: models.KindShortText,
					DefaultValue: "free verse",
					Validation:   &models.ValidationRule{Required: true}},
				{ID: "mood", Label: "Mood (e.g., Reflective, joyful, somber)", Kind: models.KindShortText,
					DefaultValue: "reflective",
					Validation:   &models.ValidationRule{Required: true}},
				{ID: "length_lines", Label: "Approx. Number of Lines (optional)", Kind: models.KindNumber,
					Placeholder: "e.g., 12-16 lines"},
			},
		},
		{
			ID:                "poem-sonnet",
			Name:              "Sonnet Generator",
			Category:          models.CategoryPoem,
			Description:       "Compose a sonnet (14 lines, specific rhyme scheme) on a given theme.",
			SystemInstruction: "You are a classical poet. Construct a well-formed sonnet adhering to traditional structures.",
			Parameters: []models.ParameterSpec{
				{ID: "theme", Label: "Theme of the Sonnet", Kind: models.KindShortText,
					Placeholder: "e.g., Love, Beauty, Time, Nature",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "rhyme_scheme", Label: "Rhyme Scheme Preference", Kind: models.KindShortText,
					DefaultValue: "Shakespearean (ABAB CDCD EFEF GG)",
					Placeholder:  "e.g., Shakespearean, Petrarchan"},
			},
		},
		{
			ID:                "poem-ode",
			Name:              "Ode to an Object/Concept",
			Category:          models.CategoryPoem,
			Description:       "Write an ode celebrating or thoughtfully examining an everyday object or abstract concept.",
			SystemInstruction: "You are a lyrical poet. Write an expressive ode that elevates its subject.",
			Parameters: []models.ParameterSpec{
				{ID: "subject_of_ode", Label: "Subject of the Ode", Kind: models.KindShortText,
					Placeholder: "e.g., A coffee mug, Silence, The Moon",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "key_qualities_to_explore", Label: "Key Qualities/Aspects", Kind: models.KindLongText,
					Placeholder: "e.g., Its warmth, its history, its mystery",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "desired_tone", Label: "Desired Tone", Kind: models.KindShortText, DefaultValue: "reverent",
					Placeholder: "e.g., Reverent, humorous, melancholic"},
			},
		},

		// Character and worldbuilding templates
		{
			ID:                "character-bio",
			Name:              "Character Bio Sketch",
			Category:          models.CategoryCharacter,
			Description:       "Develop a brief biography for a fictional character.",
			SystemInstruction: "You are a character designer. You create rich and believable character sketches.",
			Parameters: []models.ParameterSpec{
				{ID: "name", Label: "Character Name", Kind: models.KindShortText,
					Placeholder: "e.g., Elara Vance, RX-8",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "archetype", Label: "Archetype/Role (e.g., The Mentor, The Rebel, The Explorer)", Kind: models.KindShortText,
					DefaultValue: "The Hero",
					Validation:   &models.ValidationRule{Required: true}},
				{ID: "key_trait", Label: "Key Trait (e.g., Unwavering loyalty, crippling fear of heights)", Kind: models.KindShortText,
					Validation: &models.ValidationRule{Required: true}},
				{ID: "motivation", Label: "Primary Motivation (e.g., To find a lost artifact, to protect their family)", Kind: models.KindLongText,
					Placeholder: "What drives this character?",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "quirk", Label: "A Quirk or Habit (optional)", Kind: models.KindShortText,
					Placeholder: "e.g., Always humming, collects strange buttons"},
			},
		},
		{
			ID:                "world-snippet",
			Name:              "Worldbuilding Snippet",
			Category:          models.CategoryWorldbuilding,
			Description:       "Describe a small, evocative scene or aspect of a fictional world.",
			SystemInstruction: "You are a worldbuilder. You paint vivid pictures of fictional places with your words.",
			Parameters: []models.ParameterSpec{
				{ID: "world_name", Label: "Name of the World", Kind: models.KindShortText,
					Placeholder: "e.g., Aethelgard, Xylos Sector",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "key_feature", Label: "Key Feature/Element to Focus On", Kind: models.KindShortText,
					Placeholder: "e.g., Floating islands, a bioluminescent forest, ancient ruins",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "atmosphere", Label: "Atmosphere/Mood", Kind: models.KindShortText,
					Placeholder: "e.g., Mystical, desolate, bustling, eerie",
					Validation:  &models.ValidationRule{Required: true}},
				{ID: "sensory_details", Label: "Sensory Details to Include (optional)", Kind: models.KindLongText,
					Placeholder: "e.g., Smell of strange spices, sound of distant chimes"},
			},
		},
	}
}
