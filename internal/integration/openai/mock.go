package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sitebrief/requirements-backend/internal/entity"
	"github.com/sitebrief/requirements-backend/internal/prompts"
	"go.uber.org/zap"
)

// MockConnector is a deterministic stand-in for the completion backend.
// The same inputs always yield the same outputs, which keeps the
// orchestrator tests and ENABLE_MOCKS runs reproducible.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Complete(ctx context.Context, systemPrompt, userPrompt string, opts entity.CompletionOptions) (string, error) {
	ctxzap.Info(ctx, "[MOCK] completion call", zap.Bool("force_json", opts.ForceJSON))

	if !opts.ForceJSON {
		return "1. Define the site structure\n2. Draft wireframes for every page\n3. Choose a color palette and typography\n4. Implement the pages\n5. Test on mobile and desktop", nil
	}

	value := m.jsonFixture(systemPrompt)
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal mock fixture: %w", err)
	}

	return string(data), nil
}

func (m *MockConnector) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, temperature float64, out any) error {
	content, err := m.Complete(ctx, systemPrompt, userPrompt, entity.CompletionOptions{
		Temperature: temperature,
		ForceJSON:   true,
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &entity.MalformedResponseError{Reason: "response is not valid JSON", Err: err}
	}

	return nil
}

// jsonFixture picks the canned value matching the requested stage.
func (m *MockConnector) jsonFixture(systemPrompt string) any {
	switch systemPrompt {
	case prompts.GapAnalysis:
		return mockAnalysis(false)
	case prompts.GapAnalysisWithChoices:
		return mockAnalysis(true)
	case prompts.Breakdown:
		return mockBreakdown()
	case prompts.Completeness:
		return mockAssessment()
	case prompts.FollowUps:
		return mockFollowUps()
	default:
		return mockDocument()
	}
}

func mockAnalysis(withChoices bool) *entity.Analysis {
	purpose := "A website presenting the owner's work to potential clients"
	audience := "Prospective clients and collaborators"

	analysis := &entity.Analysis{
		Understood: entity.UnderstoodSummary{
			Purpose:  &purpose,
			Audience: &audience,
			Features: []string{"Work gallery", "Contact form"},
		},
		Questions: []entity.FollowUpQuestion{
			{
				ID:            "visual_style",
				Question:      "What overall visual style should the site have?",
				Category:      entity.CategoryDesign,
				CriticalLevel: 4,
				InputMode:     entity.InputModeFreeText,
			},
			{
				ID:            "booking",
				Question:      "Do you need visitors to be able to book or enquire directly?",
				Category:      entity.CategoryFeatures,
				CriticalLevel: 3,
				InputMode:     entity.InputModeFreeText,
			},
		},
	}

	if withChoices {
		analysis.Questions = []entity.FollowUpQuestion{
			{
				ID:            "visual_style",
				Question:      "What overall visual style should the site have?",
				Category:      entity.CategoryDesign,
				CriticalLevel: 4,
				InputMode:     entity.InputModeSingleChoice,
				Options: []entity.QuestionOption{
					{ID: "minimal", Text: "Minimal and clean", IsDefault: true},
					{ID: "bold", Text: "Bold and colorful"},
					{ID: "classic", Text: "Classic and elegant"},
				},
			},
			{
				ID:            "integrations",
				Question:      "Which integrations should the site include?",
				Category:      entity.CategoryTechnical,
				CriticalLevel: 3,
				InputMode:     entity.InputModeMultiChoice,
				Options: []entity.QuestionOption{
					{ID: "analytics", Text: "Analytics", IsDefault: true},
					{ID: "newsletter", Text: "Newsletter signup"},
					{ID: "social", Text: "Social media feeds"},
				},
			},
		}
	}

	return analysis
}

func mockBreakdown() *entity.RequirementsBreakdown {
	return &entity.RequirementsBreakdown{
		WebsiteName:    "Showcase Site",
		PrimaryPurpose: "Present the owner's work to the public",
		TargetAudience: "Potential clients",
		Sections: map[string][]string{
			"content":       {"About page copy", "Portfolio descriptions"},
			"design":        {"Clean gallery-first layout"},
			"functionality": {"Image gallery", "Contact form"},
			"technical":     {"Static hosting", "Image optimization"},
		},
		KeyPages:            []string{"Home", "Portfolio", "About", "Contact"},
		MissingInformation:  []string{"Preferred color scheme", "Domain name"},
		ImplementationTasks: []string{"Design mockups", "Build pages", "Launch"},
		CompletionChecklist: []string{"All pages responsive", "Contact form delivers"},
	}
}

func mockAssessment() *entity.CompletenessAssessment {
	return &entity.CompletenessAssessment{
		CompletenessScore: 72,
		CriticalGaps:      []string{"No color scheme specified"},
		SectionScores: map[string]int{
			"content":       70,
			"design":        60,
			"functionality": 85,
			"technical":     75,
		},
		ImprovementSuggestions: []string{"Clarify the visual identity"},
		AdditionalRequirements: []string{"Basic SEO setup"},
	}
}

func mockFollowUps() *entity.RefinementQuestions {
	return &entity.RefinementQuestions{
		FollowUpQuestions: []entity.RefinementQuestion{
			{
				Question:   "What colors should dominate the design?",
				Category:   "design",
				Importance: "Drives the whole visual identity",
			},
			{
				Question:   "Should visitors be able to leave comments?",
				Category:   "functionality",
				Importance: "Affects moderation and platform choice",
			},
		},
	}
}

func mockDocument() *entity.RequirementsDocument {
	return &entity.RequirementsDocument{
		WebsiteSummary: entity.WebsiteSummary{
			Name:           "Showcase Site",
			Purpose:        "Present the owner's work to potential clients",
			TargetAudience: "Prospective clients and collaborators",
		},
		Pages: []entity.Page{
			{
				Name:                  "Home",
				Purpose:               "Introduce the owner and highlight selected work",
				KeyElements:           []string{"Hero image", "Featured work", "Call to action"},
				DetailedFunctionality: "Visitors land on a hero section and scroll into a curated selection of work",
			},
			{
				Name:        "Portfolio",
				Purpose:     "Full gallery of work",
				KeyElements: []string{"Filterable grid", "Lightbox viewer"},
			},
			{
				Name:        "Contact",
				Purpose:     "Let visitors get in touch",
				KeyElements: []string{"Contact form", "Social links"},
			},
		},
		Features: []entity.Feature{
			{
				Name:             "Image gallery",
				Description:      "Responsive, filterable gallery with lazy loading",
				TechnicalDetails: "Static generation with optimized image variants",
				UserInteraction:  "Click a thumbnail to open the lightbox",
				Priority:         "high",
			},
			{
				Name:        "Contact form",
				Description: "Simple form with spam protection",
				Priority:    "medium",
			},
		},
		DesignRequirements: entity.DesignRequirements{
			Style:                       "Minimal, gallery-first",
			ColorScheme:                 "Neutral background with a single accent color",
			Typography:                  "Modern sans-serif",
			ResponsiveRequirements:      "Mobile-first, gallery reflows to a single column",
			AccessibilityConsiderations: "Alt text on every image, keyboard navigable lightbox",
		},
		TechnicalSpecifications: entity.TechnicalSpecifications{
			Platform:                "Static site generator",
			Integrations:            []string{"Analytics", "Form backend"},
			PerformanceRequirements: "First contentful paint under 2 seconds",
			SecurityRequirements:    "HTTPS everywhere, form spam protection",
		},
		ThirdPartySolutions: []entity.ThirdPartySolution{
			{
				Category: "Analytics",
				RecommendedOptions: []entity.SolutionOption{
					{
						Name:                  "Plausible",
						Description:           "Lightweight privacy-friendly analytics",
						IntegrationComplexity: "low",
						PricingTier:           "paid",
						BestFor:               "Simple traffic insight without cookie banners",
					},
				},
			},
		},
		ContentRequirements: []string{"Project descriptions", "About page copy", "High-resolution images"},
		Timeline: entity.Timeline{
			EstimatedDevelopmentTime: "3-4 weeks",
			KeyMilestones:            []string{"Design approved", "Gallery live", "Launch"},
			PotentialChallenges:      []string{"Collecting final imagery on time"},
		},
		MaintenanceRequirements: &entity.MaintenanceRequirements{
			RegularUpdates:       "Quarterly dependency updates",
			OngoingContent:       "Add new work monthly",
			TechnicalMaintenance: "Monitor uptime and renew the domain",
		},
	}
}
