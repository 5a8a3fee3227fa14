package formatter

import (
	"encoding/json"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

const (
	jsonContentType   = "application/json; charset=utf-8"
	jsonFileExtension = ".json"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (jf *JSONFormatter) Format(doc *entity.RequirementsDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func (jf *JSONFormatter) ContentType() string {
	return jsonContentType
}

func (jf *JSONFormatter) FileExtension() string {
	return jsonFileExtension
}
