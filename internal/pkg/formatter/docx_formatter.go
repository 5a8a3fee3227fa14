package formatter

import (
	"bytes"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(reqDoc *entity.RequirementsDocument) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titleRun := titlePar.AddRun()
	titleRun.AddText(baseTitle + ": " + reqDoc.WebsiteSummary.Name)

	for _, sec := range sections(reqDoc) {
		headingPar := doc.AddParagraph()
		headingPar.SetStyle("Heading2")
		headingRun := headingPar.AddRun()
		headingRun.AddText(sec.Title)

		for _, line := range sec.Lines {
			bodyPar := doc.AddParagraph()
			bodyRun := bodyPar.AddRun()
			bodyRun.AddText(line)
		}
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
