package ui

// promptEngineeringInfo is the methodology page shown from the picker.
const promptEngineeringInfo = `
## Prompt Engineering Methodology

Our approach to crafting effective prompts for generative AI focuses on several key principles:

1.  **Clarity and Specificity:**
    *   **Goal:** Ensure the AI understands exactly what is being asked.
    *   **Method:** Use precise language. Avoid ambiguity. Clearly define the desired output format, style, length, and content.
    *   *Example:* Instead of "Write a story," use "Write a 500-word science fiction story about a lone astronaut discovering an alien artifact on Mars, with a suspenseful tone."

2.  **Role-Playing / Persona Assignment (System Instructions):**
    *   **Goal:** Guide the AI's tone, style, and knowledge domain.
    *   **Method:** Instruct the AI to adopt a specific persona using a system instruction.
    *   *Example:* "You are a seasoned travel writer specializing in budget adventures. Describe three offbeat destinations in Southeast Asia." (Our templates use this strategy.)

3.  **Providing Context:**
    *   **Goal:** Give the AI necessary background information to generate relevant and accurate content.
    *   **Method:** Include key details, background information, or constraints directly in the prompt.
    *   *Example:* For a character bio, providing existing lore or world details helps the AI create a consistent character.

4.  **Constraints and Formatting Instructions:**
    *   **Goal:** Control the structure and presentation of the output.
    *   **Method:** Specify desired length (word count, lines), format (haiku, limerick, list, paragraph), and any structural requirements (e.g., rhyming scheme).
    *   *Example:* "List 5 potential titles for a fantasy novel. Each title should be no more than 5 words."

5.  **Iterative Refinement:**
    *   **Goal:** Continuously improve prompt effectiveness.
    *   **Method:** Start with a basic prompt and analyze the output. Modify the prompt based on the results, adding more detail, clarifying instructions, or trying different phrasings until the desired output is achieved. This is a crucial step in discovering what works best with a particular model.

6.  **Use of Keywords:**
    *   **Goal:** Steer the AI towards specific topics, themes, or styles.
    *   **Method:** Strategically embed relevant keywords that align with the desired output.
    *   *Example:* Including "noir," "cyberpunk," or "romantic comedy" to influence genre.

7.  **Output Filtering and Validation (Application Layer):**
    *   **Goal:** Ensure the final output meets quality and safety standards.
    *   **Method:** While the AI model has its own safety filters, the application can add checks for relevance, completeness, or adherence to specific non-AI constraints. This tool performs basic input validation to guide the user towards better prompts.

By applying these techniques, we aim to maximize the quality, relevance, and creativity of the content generated by the AI.
`
