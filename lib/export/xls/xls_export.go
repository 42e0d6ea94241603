package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	vacancyapimodels "job-board-backend/models/api/vacancy"
)

type Provider interface {
	ExportCandidacyList(list []vacancyapimodels.ReviewCandidacyView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidacyHeaders = []string{"Name", "Contacts", "Location", "Vacancy", "Applied at", "Status", "Cover letter"}

func (i impl) ExportCandidacyList(list []vacancyapimodels.ReviewCandidacyView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidacyHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeCandidacyData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Candidacies")
	return f.WriteToBuffer()
}

func writeCandidacyData(f *excelize.File, sheet string, list []vacancyapimodels.ReviewCandidacyView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidacyHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Name"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Candidate.Name); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Candidate.Phone, item.Candidate.Email)); err != nil {
			return row, err
		}

		// "Location"
		col++
		if err := writeColumn(f, sheet, col, row, item.Candidate.Location); err != nil {
			return row, err
		}

		// "Vacancy"
		col++
		if err := writeColumn(f, sheet, col, row, item.VacancyTitle); err != nil {
			return row, err
		}

		// "Applied at"
		col++
		if err := writeColumn(f, sheet, col, row, item.AppliedAt); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "Cover letter"
		col++
		if err := writeColumn(f, sheet, col, row, item.CoverLetter); err != nil {
			return row, err
		}
	}
	return row, nil
}
