package tutor

import (
	"bytes"
	"text/template"
)

const systemPrompt = `You are a hematopathology educator writing for residents and fellows. Explain how the listed findings support the diagnosis. Be precise and concise. Use current WHO terminology. This is for education only, never for patient care.`

var userTemplate = template.Must(template.New("explain").Parse(`Topic type: {{.Kind}}
Diagnosis: {{.Title}}
{{if .Facts}}
Findings:
{{range .Facts}}- {{.}}
{{end}}{{end}}
Instructions:
1. Summarize in 2-4 sentences why these findings point to the diagnosis.
2. List the key points a trainee should remember.
3. List common pitfalls or mimics, if any.
4. Use plain text. No markdown.`))

func buildUserMessage(t Topic) (string, error) {
	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, t); err != nil {
		return "", err
	}
	return buf.String(), nil
}
