package summarizer

import (
	"fmt"
	"strings"

	"universal-summarizer/models"
)

const promptInstructions = `Instructions:
1. Create a comprehensive summary with a minimum length of %s.
2. Provide a detailed explanation of the content from start to end, covering all important aspects.
3. Extract 3-5 key points or facts from the content and then explain them in detail.
4. Format the output as JSON with the following structure:
   {
     "title": "Brief title or main topic",
     "main": "The detailed summary text",
     "keyPoints": ["Key point 1", "Key point 2", "Key point 3", ...]
   }
5. Ensure the summary is factual and based solely on the provided content.
6. Include specific details, examples, and explanations from the original content.
7. Do not include any markdown formatting in the output.
8. Ensure the JSON is properly formatted and valid.
`

// minimumLength 는 길이 단계별 요약 최소 분량이다.
func minimumLength(length models.SummaryLength) string {
	switch length {
	case models.LengthShort:
		return "100 words"
	case models.LengthLong:
		return "600 words"
	default:
		return "200 words"
	}
}

// BuildPrompt 는 Gemini 에 전달할 요약 지시문을 만든다.
func BuildPrompt(in Input) string {
	source := "web content"
	if in.IsSelection {
		source = "selected text"
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "Unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Provide a detailed summary of the following %s:\n\n", source)
	fmt.Fprintf(&b, "Title: %s\n\n", title)
	b.WriteString("Content:\n")
	b.WriteString(in.Content)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, promptInstructions, minimumLength(in.Length))
	return b.String()
}
