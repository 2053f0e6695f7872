package render

import (
	"bytes"
	"fmt"
	"html/template"
)

const receiptHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: Arial, sans-serif;
      margin: 0;
      padding: 0;
      background: #f0f0f0;
      display: flex;
      justify-content: center;
      align-items: center;
      min-height: 100vh;
    }
    .receipt {
      background: white;
      padding: 60px;
      border-radius: 20px;
      box-shadow: 0 0 30px rgba(0,0,0,0.2);
      width: 700px;
      font-size: 30px;
      line-height: 1.6;
    }
    h2 {
      color: #111;
      text-align: center;
      font-size: 40px;
      margin-bottom: 40px;
      letter-spacing: 1px;
    }
    p { margin: 12px 0; }
    .amount {
      font-size: 38px;
      font-weight: bold;
      color: #000;
    }
    .thankyou {
      margin-top: 40px;
      font-size: 36px;
      font-weight: bold;
      text-align: center;
      color: #2a7a2a;
    }
    .footer {
      margin-top: 40px;
      font-size: 22px;
      color: gray;
      text-align: center;
    }
    .download-btn {
      display: block;
      text-align: center;
      margin-top: 35px;
    }
    .download-btn a {
      text-decoration: none;
      background-color: #4CAF50;
      color: white;
      padding: 20px 50px;
      font-size: 28px;
      border-radius: 10px;
    }
    @media print {
      body { background: white; }
      .receipt { box-shadow: none; border: none; width: 100%; }
      .download-btn { display: none; }
    }
  </style>
</head>
<body>
  <div class="receipt">
    <h2>{{.Title}}</h2>
    {{range .Rows}}<p><b>{{.Label}}:</b> {{.Value}}</p>
    {{end}}<p><b>Amount:</b> <span class="amount">{{money .Amount}}</span></p>
    <div class="thankyou">{{.ThankYou}}</div>
    {{if .PDFPath}}<div class="download-btn">
      <a href="{{.PDFPath}}" target="_blank">Download PDF</a>
    </div>
    {{end}}<div class="footer">{{.Footer}}</div>
  </div>
</body>
</html>
`

// Row is one label/value line on a receipt.
type Row struct {
	Label string
	Value string
}

// Input is everything a receipt page needs. The same layout serves parking,
// compound and license receipts; only the rows differ.
type Input struct {
	Title    string
	Rows     []Row
	Amount   float64
	ThankYou string
	PDFPath  string
	Footer   string
}

type Renderer interface {
	RenderHTML(input Input) (string, error)
}

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"money": formatMoney,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("receipt").Funcs(funcs).Parse(receiptHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input Input) (string, error) {
	if input.ThankYou == "" {
		input.ThankYou = "Thank you for your payment!"
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("RM %.2f", amount)
}
