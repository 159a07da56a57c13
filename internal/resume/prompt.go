// File: internal/resume/prompt.go
package resume

const promptTemplate = `
You are an expert resume analyzer. Review this resume and provide:
1. Suggestions for improvement (format, clarity, content)
2. Missing skills or sections
3. Overall score out of 10 for job applications
4. Make it short and give reviews in points maximum 10 points

Resume:
`

// BuildPrompt 將擷取出的履歷文字接在固定指示之後
func BuildPrompt(text string) string {
	return promptTemplate + text + "\n"
}
