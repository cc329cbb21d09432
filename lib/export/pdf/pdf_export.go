package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	dbmodels "employability-backend/models/db"
)

// GenerateVacancySummary формирует pdf карточку вакансии со списком откликнувшихся кандидатов
func GenerateVacancySummary(vacancy dbmodels.Vacancy) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateVacancySummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, vacancy.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s, %s", vacancy.Company, vacancy.Location), "", 1, "L", false, 0, "")

	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()

	status := "не активна"
	if vacancy.IsActive {
		status = "активна"
	}
	technologies := strings.Join(lo.Map(vacancy.Technologies, func(item dbmodels.Technology, _ int) string {
		return item.Name
	}), ", ")

	htmlStr := fmt.Sprintf("<b>Уровень:</b> %v<br>", vacancy.Seniority) +
		fmt.Sprintf("<b>Формат:</b> %v<br>", vacancy.Modality.ToHuman()) +
		fmt.Sprintf("<b>Зарплата:</b> %v<br>", vacancy.SalaryRange) +
		fmt.Sprintf("<b>Технологии:</b> %v<br>", technologies) +
		fmt.Sprintf("<b>Статус:</b> %v<br>", status) +
		fmt.Sprintf("<b>Откликов:</b> %v из %v<br><br>", vacancy.CurrentApplicants(), vacancy.MaxApplicants) +
		fmt.Sprintf("%v<br>", vacancy.Description)
	html.Write(lineHt, htmlStr)

	if len(vacancy.Applications) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Кандидаты", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		for _, application := range vacancy.Applications {
			if application.User == nil {
				continue
			}
			line := fmt.Sprintf("%s (%s), отклик от %s",
				application.User.Name,
				application.User.Email,
				application.CreatedAt.Format("02.01.2006"))
			pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
		}
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
