package poster

import (
	"bytes"
	"html/template"
	"strings"

	"sargalayam/ranking"
)

// midnight is layout B: dark background with a card stack, one card per
// position, medal-colored badges.
type midnight struct {
	tmpl *template.Template
}

func init() {
	register(&midnight{tmpl: template.Must(template.New("midnight").Parse(midnightSVG))})
}

func (t *midnight) Name() string {
	return "midnight"
}

// medal badge colors for positions 1-3
var midnightColors = [3]string{"#facc15", "#d1d5db", "#f59e0b"}

type midnightCard struct {
	Number      string
	Participant string
	School      string
	Present     bool
	Color       string
	Y           int
}

type midnightData struct {
	Event    string
	Category string
	Year     string
	Cards    [3]midnightCard
}

func (t *midnight) Render(program Program, podium ranking.Podium) (string, error) {
	slots := podiumSlots(podium)
	data := midnightData{
		Event:    strings.ToUpper(program.Event),
		Category: program.Category,
		Year:     program.Year,
	}
	for i, s := range slots {
		data.Cards[i] = midnightCard{
			Number:      s.Number,
			Participant: s.Participant,
			School:      s.School,
			Present:     s.Present,
			Color:       midnightColors[i],
			Y:           480 + i*240,
		}
	}
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const midnightSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="1080" height="1350" viewBox="0 0 1080 1350">
  <rect width="1080" height="1350" fill="#111827"/>
  <circle cx="80" cy="80" r="300" fill="#facc15" opacity="0.08"/>
  <circle cx="1000" cy="1270" r="300" fill="#dc2626" opacity="0.08"/>
  <text x="540" y="180" text-anchor="middle" font-family="Helvetica, sans-serif" font-size="32" fill="#9ca3af">SARGALAYAM {{.Year}}</text>
  <text x="540" y="280" text-anchor="middle" font-family="Helvetica, sans-serif" font-size="64" font-weight="bold" fill="#facc15" letter-spacing="6">{{.Event}}</text>
  <text x="540" y="340" text-anchor="middle" font-family="Helvetica, sans-serif" font-size="30" fill="#d1d5db">{{.Category}}</text>
{{- range .Cards}}
  <g transform="translate(120, {{.Y}})">
    <rect width="840" height="180" rx="16" fill="#ffffff" opacity="0.06" stroke="#ffffff" stroke-opacity="0.1"/>
    <circle cx="100" cy="90" r="44" fill="none" stroke="{{.Color}}" stroke-width="6"/>
    <text x="100" y="104" text-anchor="middle" font-family="Helvetica, sans-serif" font-size="40" font-weight="bold" fill="{{.Color}}">{{.Number}}</text>
    <text x="190" y="80" font-family="Helvetica, sans-serif" font-size="40" font-weight="bold" fill="{{if .Present}}#ffffff{{else}}#6b7280{{end}}">{{.Participant}}</text>
    <text x="190" y="130" font-family="Helvetica, sans-serif" font-size="28" fill="#9ca3af">{{.School}}</text>
    <text x="790" y="110" text-anchor="end" font-family="Helvetica, sans-serif" font-size="64" font-weight="bold" fill="{{.Color}}">{{.Number}}</text>
  </g>
{{- end}}
  <text x="540" y="1290" text-anchor="middle" font-family="Helvetica, sans-serif" font-size="22" fill="#6b7280">SSF DAAWA SECTOR</text>
</svg>
`
