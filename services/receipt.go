package services

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
)

// Fixed-width receipt for the kitchen printer flow: the board opens it in a
// new window and the browser print dialog does the rest.
var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Order.OrderNo}}</title>
<style>
body { font-family: monospace; width: 280px; margin: 0 auto; }
hr { border: none; border-top: 1px dashed #000; }
.row { display: flex; justify-content: space-between; }
.ing { padding-left: 12px; }
</style>
</head>
<body onload="window.print()">
<h3>DR. BURGER</h3>
<div>Sipariş: {{.Order.OrderNo}}</div>
{{if .TableLabel}}<div>Masa: {{.TableLabel}}</div>{{end}}
{{if .Order.CustomerName}}<div>Müşteri: {{.Order.CustomerName}}</div>{{end}}
<div>{{.Order.CreatedAt.Format "02.01.2006 15:04"}}</div>
<hr>
{{range .Order.Lines}}<div class="row"><span>{{.Qty}} x {{.Name}}</span><span>{{printf "%.2f" .Total}}</span></div>
{{range .Ingredients}}<div class="ing">- {{.Name}}{{if gt .Qty 1}} x{{.Qty}}{{end}}</div>
{{end}}{{end}}
<hr>
<div class="row"><strong>TOPLAM</strong><strong>₺{{printf "%.2f" .Order.Total}}</strong></div>
{{if .Order.Notes}}<hr><div>Not: {{.Order.Notes}}</div>{{end}}
</body>
</html>
`))

type receiptData struct {
	Order      *entity.Order
	TableLabel string
}

func tableLabel(tableNo int) string {
	switch tableNo {
	case 0:
		return "Telefon"
	case 99:
		return "Paket"
	}
	return strconv.Itoa(tableNo)
}

// RenderReceipt renders the printable HTML document for an order.
func RenderReceipt(o *entity.Order) (string, error) {
	var b bytes.Buffer
	err := receiptTmpl.Execute(&b, receiptData{Order: o, TableLabel: tableLabel(o.TableNo)})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
