package render

import (
    "bytes"
    "fmt"
    "html/template"

    "exoplanet/internal/data"
)

type Status string

const (
    Success Status = "success"
    Info    Status = "info"
    Failure Status = "failure"
)

type kind uint8

const (
    notice kind = iota
    outcome
)

// Block is one piece of markup shown in a display slot.
type Block struct {
    Status  Status
    Icon    string
    Message template.HTML
    kind    kind
}

var blocks = template.Must(template.New("blocks").Parse(
    `{{define "outcome"}}<div class="result-box {{.Status}}"><h3>{{.Icon}} {{.Message}}</h3></div>{{end}}` +
        `{{define "notice"}}<p class="{{.Status}}">{{if .Icon}}{{.Icon}} {{end}}{{.Message}}</p>{{end}}`))

func (b Block) HTML() template.HTML {
    name := "notice"
    if b.kind == outcome { name = "outcome" }
    var buf bytes.Buffer
    if err := blocks.ExecuteTemplate(&buf, name, b); err != nil {
        return template.HTML(template.HTMLEscapeString(err.Error()))
    }
    return template.HTML(buf.String())
}

// RevealsNav reports whether showing b should reveal the page's back link.
func (b Block) RevealsNav() bool { return b.kind == outcome }

func (b Block) IsZero() bool { return b.Status == "" && b.Message == "" }

// ForLabel maps a classification label to its outcome block. Labels other
// than CONFIRMED and CANDIDATE, including empty ones, render as false positives.
func ForLabel(label data.Label) Block {
    b := Block{kind: outcome}
    switch label {
    case data.Confirmed:
        b.Status, b.Icon, b.Message = Success, "✅", "<strong>CONFIRMED EXOPLANET</strong>!"
    case data.Candidate:
        b.Status, b.Icon, b.Message = Info, "🔬", "Promising <strong>CANDIDATE</strong>"
    default:
        b.Status, b.Icon, b.Message = Failure, "❌", "Likely <strong>FALSE POSITIVE</strong>"
    }
    return b
}

func Pending() Block {
    return Block{Status: Info, Message: "Analyzing candidate..."}
}

func RowPending(row int) Block {
    return Block{Status: Info, Message: template.HTML(fmt.Sprintf("<em>Analyzing row %d...</em>", row))}
}

func Parsing() Block {
    return Block{Status: Info, Message: "Parsing CSV..."}
}

// Error renders a failure notice; msg is escaped.
func Error(msg string) Block {
    return Block{Status: Failure, Icon: "⚠️", Message: template.HTML("Error: " + template.HTMLEscapeString(msg))}
}

// Warning renders a failure notice without the "Error:" prefix; msg is escaped.
func Warning(msg string) Block {
    return Block{Status: Failure, Icon: "⚠️", Message: template.HTML(template.HTMLEscapeString(msg))}
}

func EmptyFile() Block { return Warning("CSV file is empty.") }

func InvalidFields() Block { return Error("All fields must contain valid numbers") }

func MissingColumn(col string) Block {
    return Block{Status: Failure, Icon: "⚠️", Message: template.HTML("Missing required column: <strong>" + template.HTMLEscapeString(col) + "</strong>")}
}
