package poster

import (
	"bytes"
	"html/template"
	"strings"

	"sargalayam/ranking"
)

// classic is layout A: white background, red result tag, program header and
// a numbered left-column winner list.
type classic struct {
	tmpl *template.Template
}

func init() {
	tmpl := template.New("classic").Funcs(template.FuncMap{
		"slotY": func(i int) int { return i * 160 },
	})
	register(&classic{tmpl: template.Must(tmpl.Parse(classicSVG))})
}

func (t *classic) Name() string {
	return "classic"
}

type classicData struct {
	Event    string
	Category string
	Year     string
	Slots    [3]slot
}

func (t *classic) Render(program Program, podium ranking.Podium) (string, error) {
	data := classicData{
		Event:    strings.ToUpper(program.Event),
		Category: strings.ToUpper(program.Category),
		Year:     program.Year,
		Slots:    podiumSlots(podium),
	}
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const classicSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="1080" height="1350" viewBox="0 0 1080 1350">
  <rect width="1080" height="1350" fill="#ffffff"/>
  <rect x="0" y="0" width="1080" height="14" fill="#dc2626"/>
  <text x="60" y="120" font-family="Georgia, serif" font-size="56" font-weight="bold" fill="#e55b13">SARGALAYAM</text>
  <text x="1020" y="120" text-anchor="end" font-family="Helvetica, sans-serif" font-size="40" font-weight="bold" fill="#111111">{{.Year}}</text>
  <g transform="translate(60, 220)">
    <rect x="0" y="-36" width="44" height="150" rx="4" fill="#dc2626"/>
    <text x="22" y="40" text-anchor="middle" font-family="Helvetica, sans-serif" font-size="24" font-weight="bold" fill="#ffffff" transform="rotate(-90 22 40)">RESULT</text>
    <text x="70" y="30" font-family="Helvetica, sans-serif" font-size="54" font-weight="bold" fill="#111111">{{.Event}}</text>
    <rect x="70" y="60" width="320" height="48" rx="24" fill="#dc2626"/>
    <text x="230" y="93" text-anchor="middle" font-family="Helvetica, sans-serif" font-size="26" font-weight="bold" fill="#ffffff">{{.Category}}</text>
  </g>
  <g transform="translate(60, 520)">
{{- range $i, $s := .Slots}}
    <g transform="translate(0, {{slotY $i}})">
      <circle cx="40" cy="40" r="38" fill="none" stroke="#16a34a" stroke-width="5"/>
      <text x="40" y="52" text-anchor="middle" font-family="Helvetica, sans-serif" font-size="32" font-weight="bold" fill="#16a34a">{{$s.Number}}</text>
      <text x="110" y="34" font-family="Helvetica, sans-serif" font-size="38" font-weight="bold" fill="{{if $s.Present}}#111111{{else}}#9ca3af{{end}}">{{$s.Participant}}</text>
      <text x="110" y="76" font-family="Helvetica, sans-serif" font-size="28" fill="#6b7280">{{$s.School}}</text>
    </g>
{{- end}}
  </g>
  <text x="540" y="1290" text-anchor="middle" font-family="Helvetica, sans-serif" font-size="24" font-weight="bold" fill="#374151">SKSSF THRISSUR DISTRICT COMMITTEE</text>
</svg>
`
