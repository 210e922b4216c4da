package printer

import "fmt"

// ReceiptLine is one printable line item.
type ReceiptLine struct {
	Label    string
	Quantity int
	Total    float64
}

// ReceiptDoc is a printable view of a paid receipt. It is composed from
// domain data at print time, not persisted.
type ReceiptDoc struct {
	StoreName string
	ReceiptID string
	Date      string
	Lines     []ReceiptLine
	Total     float64
	Discount  *float64 // discounted total, if any
	Paid      float64
	Currency  string
}

// BuildReceipt renders the receipt as an ESC/POS byte stream ready to be
// sent to a Printer.
func BuildReceipt(doc ReceiptDoc, charWidth int) []byte {
	d := NewDocument(charWidth)

	d.SetAlign(AlignCenter).
		SetFontSize(FontDouble).
		Text(doc.StoreName).
		SetFontSize(FontNormal).
		Text(doc.Date).
		TextF("Receipt %s", doc.ReceiptID).
		SetAlign(AlignLeft).
		Separator('-')

	for _, line := range doc.Lines {
		d.ItemLine(line.Quantity, line.Label, fmt.Sprintf("%.2f", line.Total))
	}

	d.Separator('-').
		KeyValue("Total", fmt.Sprintf("%.2f %s", doc.Total, doc.Currency))
	if doc.Discount != nil {
		d.KeyValue("Discounted", fmt.Sprintf("%.2f %s", *doc.Discount, doc.Currency))
	}
	d.SetBold(true).
		KeyValue("Paid", fmt.Sprintf("%.2f %s", doc.Paid, doc.Currency)).
		SetBold(false).
		FeedLines(3).
		Cut()

	return d.Bytes()
}
