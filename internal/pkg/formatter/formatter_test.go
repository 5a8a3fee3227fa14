package formatter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *entity.RequirementsDocument {
	return &entity.RequirementsDocument{
		WebsiteSummary: entity.WebsiteSummary{
			Name:           "Artisan Coffee Shop",
			Purpose:        "Showcase the shop and take online orders",
			TargetAudience: "Local coffee enthusiasts",
		},
		Pages: []entity.Page{
			{
				Name:        "Home",
				Purpose:     "Introduce the shop",
				KeyElements: []string{"Hero image", "Opening hours"},
			},
			{
				Name:                  "Menu",
				Purpose:               "List drinks and pastries",
				KeyElements:           []string{"Category tabs"},
				DetailedFunctionality: "Filter by dietary restrictions",
			},
		},
		Features: []entity.Feature{
			{
				Name:        "Online ordering",
				Description: "Customers order ahead for pickup",
				Priority:    "high",
			},
		},
		DesignRequirements: entity.DesignRequirements{
			Style:                  "warm and rustic",
			ColorScheme:            "browns and creams",
			Typography:             "serif headings",
			ResponsiveRequirements: "mobile first",
		},
		TechnicalSpecifications: entity.TechnicalSpecifications{
			Platform:                "static site with ordering API",
			Integrations:            []string{"Stripe"},
			PerformanceRequirements: "loads under two seconds",
		},
		ContentRequirements: []string{"Product photos", "Menu copy"},
		Timeline: entity.Timeline{
			EstimatedDevelopmentTime: "4 weeks",
			KeyMilestones:            []string{"Design approval", "Launch"},
		},
	}
}

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	cases := []struct {
		format      entity.ResultFormat
		contentType string
		extension   string
	}{
		{entity.FormatJSON, "application/json; charset=utf-8", ".json"},
		{entity.FormatMarkdown, "text/markdown; charset=utf-8", ".md"},
		{entity.FormatPDF, "application/pdf", ".pdf"},
		{entity.FormatDOCX, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
	}

	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			f, err := factory.Create(tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.contentType, f.ContentType())
			assert.Equal(t, tc.extension, f.FileExtension())
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := factory.Create(entity.ResultFormat("xml"))
		require.ErrorIs(t, err, entity.ErrUnknownFormat)
	})
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := NewJSONFormatter().Format(doc)
	require.NoError(t, err)

	var restored entity.RequirementsDocument
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, *doc, restored)
}

func TestMarkdownFormatter(t *testing.T) {
	data, err := NewMarkdownFormatter().Format(sampleDocument())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "# Website Requirements")
	assert.Contains(t, text, "## Website Summary")
	assert.Contains(t, text, "## Pages")
	assert.Contains(t, text, "## Features")
	assert.Contains(t, text, "## Timeline")
	assert.Contains(t, text, "Artisan Coffee Shop")
	assert.Contains(t, text, "Online ordering")
}

func TestPDFFormatter(t *testing.T) {
	data, err := NewPDFFormatter().Format(sampleDocument())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestDOCXFormatter(t *testing.T) {
	data, err := NewDOCXFormatter().Format(sampleDocument())
	require.NoError(t, err)

	// DOCX files are zip archives
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}
