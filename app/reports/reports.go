// Package reports renders fixed HTML documents (ID cards, fee receipts,
// report cards) from entity fields and hands them to a share sink.
// Nothing here is persisted; documents are produced on demand.
package reports

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/Nayan-navghane/School-application/app/apperr"
	"github.com/Nayan-navghane/School-application/app/store"
)

type IDCard struct {
	Name             string
	Class            string
	Section          string
	RollNo           string
	DOB              string
	BloodGroup       string
	EmergencyContact string
	PhotoURL         string
}

type Receipt struct {
	StudentID string
	Amount    string
	Date      string
	Mode      string
	ReceiptID string
}

type MarkLine struct {
	ExamID string
	Marks  int
	Total  int
}

type ReportCard struct {
	StudentID     string
	Lines         []MarkLine
	TotalMarks    int
	TotalPossible int
	Average       float64
}

var (
	idCardTmpl = template.Must(template.New("idcard").Parse(`<html>
  <body style="font-family: Arial; text-align: center; padding: 20px;">
    <h1>Student ID Card</h1>
    {{if .PhotoURL}}<img src="{{.PhotoURL}}" style="width: 100px; height: 100px; border-radius: 50%;">{{end}}
    <h2>{{.Name}}</h2>
    <p>Class: {{.Class}} - {{.Section}}</p>
    <p>Roll No: {{.RollNo}}</p>
    <p>DOB: {{.DOB}}</p>
    <p>Blood Group: {{.BloodGroup}}</p>
    <p>Emergency: {{.EmergencyContact}}</p>
  </body>
</html>`))

	receiptTmpl = template.Must(template.New("receipt").Parse(`<html>
  <body style="font-family: Arial; text-align: center; padding: 20px;">
    <h1>Fee Receipt</h1>
    <p>Student ID: {{.StudentID}}</p>
    <p>Amount Paid: ${{.Amount}}</p>
    <p>Date: {{.Date}}</p>
    <p>Mode: {{.Mode}}</p>
    <p>Receipt ID: {{.ReceiptID}}</p>
  </body>
</html>`))

	reportCardTmpl = template.Must(template.New("reportcard").Parse(`<html>
  <body style="font-family: Arial; text-align: center; padding: 20px;">
    <h1>Report Card</h1>
    <p>Student ID: {{.StudentID}}</p>
    <p>Total Marks: {{.TotalMarks}} / {{.TotalPossible}}</p>
    <p>Average: {{printf "%.2f" .Average}}%</p>
    <h3>Marks Details:</h3>
    {{range .Lines}}<p>{{.ExamID}}: {{.Marks}}/{{.Total}}</p>
    {{end}}
  </body>
</html>`))
)

// BuildIDCard maps a student record's fields onto the ID card data.
func BuildIDCard(student store.Record, photoURL string) IDCard {
	return IDCard{
		Name:             student.Field("name"),
		Class:            student.Field("class"),
		Section:          student.Field("section"),
		RollNo:           student.Field("rollNo"),
		DOB:              student.Field("dob"),
		BloodGroup:       student.Field("bloodGroup"),
		EmergencyContact: student.Field("emergencyContact"),
		PhotoURL:         photoURL,
	}
}

// BuildReceipt maps a payment record onto the receipt data.
func BuildReceipt(payment store.Record) Receipt {
	return Receipt{
		StudentID: payment.Field("studentId"),
		Amount:    payment.Field("amount"),
		Date:      payment.Field("date"),
		Mode:      payment.Field("mode"),
		ReceiptID: payment.ID,
	}
}

// BuildReportCard aggregates a student's marks. Zero matched records
// yields an average of 0, not an error.
func BuildReportCard(studentID string, marks []store.Record) ReportCard {
	card := ReportCard{StudentID: studentID}
	for _, m := range marks {
		if m.Field("studentId") != studentID {
			continue
		}
		got, _ := strconv.Atoi(m.Field("marks"))
		total, err := strconv.Atoi(m.Field("total"))
		if err != nil {
			total = 100
		}
		card.Lines = append(card.Lines, MarkLine{
			ExamID: m.Field("examId"),
			Marks:  got,
			Total:  total,
		})
		card.TotalMarks += got
	}
	card.TotalPossible = len(card.Lines) * 100
	if len(card.Lines) > 0 {
		card.Average = float64(card.TotalMarks) / float64(len(card.Lines))
	}
	return card
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", apperr.Collaborator("render "+tmpl.Name(), err)
	}
	return buf.String(), nil
}

func RenderIDCard(card IDCard) (string, error)       { return render(idCardTmpl, card) }
func RenderReceipt(rcpt Receipt) (string, error)     { return render(receiptTmpl, rcpt) }
func RenderReportCard(rc ReportCard) (string, error) { return render(reportCardTmpl, rc) }
