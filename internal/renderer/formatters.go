package renderer

import (
	"fmt"
	"strings"

	"github.com/musekit/muse/internal/models"
)

// FormatterFunc maps parameter values onto one template's natural-language
// scaffold. Formatters are pure functions.
type FormatterFunc func(models.Values) string

// formatters keys every catalog template id to its scaffold. The catalog
// test asserts this table and the catalog stay in sync.
var formatters = map[string]FormatterFunc{
	"story-general":            storyGeneral,
	"story-flash-fiction":      storyFlashFiction,
	"story-dialogue-scene":     storyDialogueScene,
	"story-twist-ending":       storyTwistEnding,
	"story-historical-snippet": storyHistoricalSnippet,
	"haiku-poem":               haikuPoem,
	"limerick-poem":            limerickPoem,
	"poem-thematic":            poemThematic,
	"poem-sonnet":              poemSonnet,
	"poem-ode":                 poemOde,
	"character-bio":            characterBio,
	"world-snippet":            worldSnippet,
}

// orElse returns the stringified value, or the fallback phrase when unset.
func orElse(v models.Values, id, fallback string) string {
	if s := v.String(id); s != "" {
		return s
	}
	return fallback
}

func storyGeneral(v models.Values) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short story with an approximate word count of %s words.\n",
		orElse(v, "length_words", "300"))
	fmt.Fprintf(&b, "Genre: %s.\n", v.String("genre"))
	fmt.Fprintf(&b, "Tone: %s.\n", v.String("tone"))
	fmt.Fprintf(&b, "Protagonist: %s.\n", v.String("protagonist"))
	fmt.Fprintf(&b, "Setting: %s.\n", orElse(v, "setting", "a vividly imagined location"))
	fmt.Fprintf(&b, "Plot Hook: %s.\n", v.String("plot_hook"))
	b.WriteString("Make the story compelling and well-structured.")
	return b.String()
}

func storyFlashFiction(v models.Values) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compose a piece of flash fiction, approximately %s words, based on the concept: %q.\n",
		v.String("word_limit"), v.String("concept"))
	if emotion := v.String("desired_emotion"); emotion != "" {
		fmt.Fprintf(&b, "The story should evoke a sense of %s.\n", emotion)
	}
	b.WriteString("Focus on impact and brevity.")
	return b.String()
}

func storyDialogueScene(v models.Values) string {
	var b strings.Builder
	b.WriteString("Write a dialogue-driven scene between two characters:\n")
	fmt.Fprintf(&b, "Character A: %s\n", v.String("character_a_desc"))
	fmt.Fprintf(&b, "Character B: %s\n", v.String("character_b_desc"))
	fmt.Fprintf(&b, "Scenario: %s\n", v.String("scenario"))
	if setting := v.String("setting_brief"); setting != "" {
		fmt.Fprintf(&b, "Setting: %s\n", setting)
	}
	b.WriteString("Focus on realistic and engaging dialogue that reveals their personalities and the tension of the situation.")
	return b.String()
}

func storyTwistEnding(v models.Values) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short %s story, approximately %s words, with a significant twist ending.\n",
		v.String("genre"), v.String("length_words"))
	fmt.Fprintf(&b, "Initial Premise: %s.\n", v.String("initial_setup"))
	fmt.Fprintf(&b, "The protagonist is trying to achieve: %s.\n", v.String("protagonist_goal"))
	b.WriteString("Build suspense or misdirection, leading to an unexpected reveal.")
	return b.String()
}

func storyHistoricalSnippet(v models.Values) string {
	var b strings.Builder
	b.WriteString("Create a short historical fiction snippet (around 200-300 words).\n")
	fmt.Fprintf(&b, "Setting: %s.\n", v.String("historical_period"))
	fmt.Fprintf(&b, "Perspective: A %s.\n", v.String("character_role"))
	fmt.Fprintf(&b, "Focus: %s.\n", v.String("key_event_or_detail"))
	fmt.Fprintf(&b, "Mood: %s.\n", v.String("desired_mood"))
	b.WriteString("Immerse the reader in the period through sensory details and the character's internal experience.")
	return b.String()
}

func haikuPoem(v models.Values) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compose a haiku (three lines with 5, 7, and 5 syllables respectively) about the following topic: %s.\n",
		v.String("topic"))
	b.WriteString("Ensure the haiku captures the essence of the topic concisely and evocatively.")
	return b.String()
}

func limerickPoem(v models.Values) string {
	subject := v.String("subject_description")
	if name := v.String("subject_name"); name != "" {
		subject = name + ", " + subject
	}

	var b strings.Builder
	b.WriteString("Compose a limerick. A limerick is a five-line poem with a specific rhyming scheme (AABBA) and syllable structure, often humorous.\n")
	fmt.Fprintf(&b, "The subject is: %s.\n", subject)
	fmt.Fprintf(&b, "Their notable action or quirk is: %s.\n", v.String("action_or_quirk"))
	b.WriteString("Ensure the limerick is funny and follows the AABBA rhyme scheme.")
	return b.String()
}

func poemThematic(v models.Values) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compose a poem about the theme of %q.\n", v.String("theme"))
	fmt.Fprintf(&b, "The desired style is %s.\n", v.String("style"))
	fmt.Fprintf(&b, "The mood should be %s.\n", v.String("mood"))
	if lines := v.String("length_lines"); lines != "" {
		fmt.Fprintf(&b, "The poem should be approximately %s lines long.\n", lines)
	} else {
		b.WriteString("The length should be appropriate for the theme and style.\n")
	}
	b.WriteString("Craft a poem that is both expressive and well-structured.")
	return b.String()
}

func poemSonnet(v models.Values) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compose a sonnet (14 lines) on the theme of %q.\n", v.String("theme"))
	fmt.Fprintf(&b, "Adhere to the %s rhyme scheme and iambic pentameter if possible.\n",
		orElse(v, "rhyme_scheme", "Shakespearean"))
	b.WriteString("The sonnet should explore the theme thoughtfully and poetically.")
	return b.String()
}

func poemOde(v models.Values) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write an ode dedicated to %q.\n", v.String("subject_of_ode"))
	fmt.Fprintf(&b, "The poem should explore these qualities/aspects: %s.\n", v.String("key_qualities_to_explore"))
	fmt.Fprintf(&b, "The tone should be %s.\n", v.String("desired_tone"))
	b.WriteString("Craft a lyrical and expressive poem that dignifies or deeply considers the subject.")
	return b.String()
}

func characterBio(v models.Values) string {
	var b strings.Builder
	b.WriteString("Create a character biography sketch for:\n")
	fmt.Fprintf(&b, "Name: %s.\n", v.String("name"))
	fmt.Fprintf(&b, "Archetype/Role: %s.\n", v.String("archetype"))
	fmt.Fprintf(&b, "Key Trait: %s.\n", v.String("key_trait"))
	fmt.Fprintf(&b, "Primary Motivation: %s.\n", v.String("motivation"))
	if quirk := v.String("quirk"); quirk != "" {
		fmt.Fprintf(&b, "Quirk/Habit: %s.\n", quirk)
	}
	b.WriteString("Provide a compelling and concise description of this character, highlighting their personality and driving forces.")
	return b.String()
}

func worldSnippet(v models.Values) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Describe an evocative snippet or scene from the world of %s.\n", v.String("world_name"))
	fmt.Fprintf(&b, "Focus on its distinctive feature: %s.\n", v.String("key_feature"))
	fmt.Fprintf(&b, "The atmosphere should be: %s.\n", v.String("atmosphere"))
	if sensory := v.String("sensory_details"); sensory != "" {
		fmt.Fprintf(&b, "Incorporate these sensory details if possible: %s.\n", sensory)
	} else {
		b.WriteString("Use vivid sensory details to bring the scene to life.\n")
	}
	b.WriteString("Paint a brief but memorable picture of this aspect of the world.")
	return b.String()
}
