package gemini

import "text/template"

// promptData represents the data passed to the prompt template
type promptData struct {
	Content string
}

// promptTemplate is the fixed instructional template sent to the model. It
// demands strict JSON with a "flashcards" array and literal \n escapes for
// line breaks inside answers; the fence-unwrapping step still tolerates
// models that wrap the payload in a markdown code block anyway.
var promptTemplate = template.Must(template.New("flashcards").Parse(`You are an intelligent assistant that must create flashcards from the provided content.
Output only valid JSON (no markdown, no code fences, no explanations).

Each flashcard object must have:
  - "question": a short question or heading (string)
  - "answer": 2-4 bullet points or a short summary (string, using \n for new lines)

Example output:
{
  "flashcards": [
    {"question": "What is AI?", "answer": "• Simulation of human intelligence\n• Enables learning and reasoning"},
    {"question": "Applications of AI", "answer": "• Healthcare\n• Finance\n• Automation"}
  ]
}

Now create flashcards for the content below.
Return only JSON — do not include any text or markdown outside it.

CONTENT:
{{.Content}}
`))
