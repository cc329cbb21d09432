package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	analyticsapimodels "employability-backend/models/api/analytics"
	dbmodels "employability-backend/models/db"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error)
	ExportOverview(data analyticsapimodels.OverviewData) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Кандидат", "Почта", "Вакансия", "Компания", "Дата отклика"}

// ExportApplicationList формирует реестр откликов, записи должны быть загружены с кандидатом и вакансией
func (i impl) ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = writeApplicationData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Отклики")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return err
	}
	for _, item := range list {
		row++
		// "Кандидат"
		col := 1
		if item.User != nil {
			if err := writeColumn(f, sheet, col, row, item.User.Name); err != nil {
				return err
			}
		}

		// "Почта"
		col++
		if item.User != nil {
			if err := writeColumn(f, sheet, col, row, item.User.Email); err != nil {
				return err
			}
		}

		// "Вакансия"
		col++
		if item.Vacancy != nil {
			if err := writeColumn(f, sheet, col, row, item.Vacancy.Title); err != nil {
				return err
			}
		}

		// "Компания"
		col++
		if item.Vacancy != nil {
			if err := writeColumn(f, sheet, col, row, item.Vacancy.Company); err != nil {
				return err
			}
		}

		// "Дата отклика"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
			return err
		}
	}
	return nil
}

var overviewHeaders = []string{"Вакансия", "Компания", "Активна", "Лимит откликов", "Откликов", "Свободных слотов", "Заполненность"}

// ExportOverview формирует сводку по заполненности вакансий
func (i impl) ExportOverview(data analyticsapimodels.OverviewData) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, overviewHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(data.Vacancies) != 0 {
		if err = writeOverviewData(f, sheet, data.Vacancies, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Заполненность")
	return f.WriteToBuffer()
}

func writeOverviewData(f *excelize.File, sheet string, list []analyticsapimodels.VacancyFillData, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(overviewHeaders), len(list)+1); err != nil {
		return err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Company); err != nil {
			return err
		}

		col++
		active := "Нет"
		if item.IsActive {
			active = "Да"
		}
		if err := writeColumn(f, sheet, col, row, active); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.MaxApplicants); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.CurrentApplicants); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.AvailableSlots); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.0f%%", item.FillRate*100)); err != nil {
			return err
		}
	}
	return nil
}
