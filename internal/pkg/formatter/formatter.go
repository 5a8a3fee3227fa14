package formatter

import (
	"fmt"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

const baseTitle = "Website Requirements"

// Formatter renders a requirements document into one output format
type Formatter interface {
	Format(doc *entity.RequirementsDocument) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatJSON:
		return NewJSONFormatter(), nil
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownFormat, format)
	}
}

// section is a flattened view of one document part, shared by the
// text-oriented formatters.
type section struct {
	Title string
	Lines []string
}

func sections(doc *entity.RequirementsDocument) []section {
	var out []section

	out = append(out, section{
		Title: "Website Summary",
		Lines: []string{
			"Name: " + doc.WebsiteSummary.Name,
			"Purpose: " + doc.WebsiteSummary.Purpose,
			"Target Audience: " + doc.WebsiteSummary.TargetAudience,
		},
	})

	pages := section{Title: "Pages"}
	for i, page := range doc.Pages {
		pages.Lines = append(pages.Lines, fmt.Sprintf("%d. %s — %s", i+1, page.Name, page.Purpose))
		for _, el := range page.KeyElements {
			pages.Lines = append(pages.Lines, "   • "+el)
		}
		if page.DetailedFunctionality != "" {
			pages.Lines = append(pages.Lines, "   "+page.DetailedFunctionality)
		}
	}
	out = append(out, pages)

	features := section{Title: "Features"}
	for i, feature := range doc.Features {
		features.Lines = append(features.Lines,
			fmt.Sprintf("%d. %s (priority: %s)", i+1, feature.Name, feature.Priority),
			"   "+feature.Description,
		)
		if feature.TechnicalDetails != "" {
			features.Lines = append(features.Lines, "   Technical: "+feature.TechnicalDetails)
		}
		if feature.UserInteraction != "" {
			features.Lines = append(features.Lines, "   Interaction: "+feature.UserInteraction)
		}
	}
	out = append(out, features)

	design := section{
		Title: "Design Requirements",
		Lines: []string{
			"Style: " + doc.DesignRequirements.Style,
			"Color Scheme: " + doc.DesignRequirements.ColorScheme,
			"Typography: " + doc.DesignRequirements.Typography,
			"Responsive: " + doc.DesignRequirements.ResponsiveRequirements,
		},
	}
	if doc.DesignRequirements.AccessibilityConsiderations != "" {
		design.Lines = append(design.Lines, "Accessibility: "+doc.DesignRequirements.AccessibilityConsiderations)
	}
	out = append(out, design)

	tech := section{
		Title: "Technical Specifications",
		Lines: []string{
			"Platform: " + doc.TechnicalSpecifications.Platform,
			"Performance: " + doc.TechnicalSpecifications.PerformanceRequirements,
		},
	}
	for _, integration := range doc.TechnicalSpecifications.Integrations {
		tech.Lines = append(tech.Lines, "Integration: "+integration)
	}
	if doc.TechnicalSpecifications.SecurityRequirements != "" {
		tech.Lines = append(tech.Lines, "Security: "+doc.TechnicalSpecifications.SecurityRequirements)
	}
	out = append(out, tech)

	if len(doc.ThirdPartySolutions) > 0 {
		third := section{Title: "Third-Party Solutions"}
		for _, solution := range doc.ThirdPartySolutions {
			third.Lines = append(third.Lines, solution.Category+":")
			for _, opt := range solution.RecommendedOptions {
				third.Lines = append(third.Lines, fmt.Sprintf("   • %s (%s, %s) — %s",
					opt.Name, opt.IntegrationComplexity, opt.PricingTier, opt.Description))
			}
		}
		out = append(out, third)
	}

	content := section{Title: "Content Requirements"}
	for i, item := range doc.ContentRequirements {
		content.Lines = append(content.Lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	out = append(out, content)

	timeline := section{
		Title: "Timeline",
		Lines: []string{"Estimated Development Time: " + doc.Timeline.EstimatedDevelopmentTime},
	}
	for _, milestone := range doc.Timeline.KeyMilestones {
		timeline.Lines = append(timeline.Lines, "Milestone: "+milestone)
	}
	for _, challenge := range doc.Timeline.PotentialChallenges {
		timeline.Lines = append(timeline.Lines, "Challenge: "+challenge)
	}
	out = append(out, timeline)

	if doc.MaintenanceRequirements != nil {
		out = append(out, section{
			Title: "Maintenance",
			Lines: []string{
				"Regular Updates: " + doc.MaintenanceRequirements.RegularUpdates,
				"Ongoing Content: " + doc.MaintenanceRequirements.OngoingContent,
				"Technical Maintenance: " + doc.MaintenanceRequirements.TechnicalMaintenance,
			},
		})
	}

	return out
}
