package notifier

import (
	"html/template"
	"strings"

	"jobskills/internal/usecase/jobs"
)

const digestSubject = "Your Fresh Job Recommendations"

var digestTmpl = template.Must(template.New("digest").
	Funcs(template.FuncMap{
		"rank": func(i int) int { return i + 1 },
	}).
	Parse(`<h2 style="font-family:Arial; color:#333;">Your Fresh Job Matches 🚀</h2>
<p>Based on your skills, here are the latest jobs for you:</p>
<table style="border-collapse: collapse; width:100%; font-family:Arial; font-size:14px;">
  <thead>
    <tr style="background-color:#f2f2f2;">
      <th style="padding:8px; border:1px solid #ddd;">Sr.No.</th>
      <th style="padding:8px; border:1px solid #ddd;">Job Title</th>
      <th style="padding:8px; border:1px solid #ddd;">Company</th>
      <th style="padding:8px; border:1px solid #ddd;">Match %</th>
      <th style="padding:8px; border:1px solid #ddd;">Action</th>
    </tr>
  </thead>
  <tbody>
{{- range $i, $j := .}}
    <tr>
      <td style="padding:8px; border:1px solid #ddd;">{{rank $i}}</td>
      <td style="padding:8px; border:1px solid #ddd;">{{$j.Title}}</td>
      <td style="padding:8px; border:1px solid #ddd;">{{$j.Company}}</td>
      <td style="padding:8px; border:1px solid #ddd; text-align:center;">{{$j.MatchScore}}%</td>
      <td style="padding:8px; border:1px solid #ddd; text-align:center;">
        {{- if $j.URL}}
        <a href="{{$j.URL}}" target="_blank" style="background:#4F46E5; color:#fff; padding:6px 12px; text-decoration:none; border-radius:4px; font-size:13px;">Apply</a>
        {{- else}}N/A{{- end}}
      </td>
    </tr>
{{- end}}
  </tbody>
</table>
<p style="margin-top:20px;">Good luck!✨</p>
`))

// renderDigest produces the HTML email body listing ranked matches.
func renderDigest(ranked []jobs.ScoredPosting) (string, error) {
	var b strings.Builder
	if err := digestTmpl.Execute(&b, ranked); err != nil {
		return "", err
	}
	return b.String(), nil
}
