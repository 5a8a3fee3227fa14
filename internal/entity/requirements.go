package entity

// WebsiteSummary names the site and states who it is for
type WebsiteSummary struct {
	Name           string `json:"name"`
	Purpose        string `json:"purpose"`
	TargetAudience string `json:"target_audience"`
}

type Page struct {
	Name                  string   `json:"name"`
	Purpose               string   `json:"purpose"`
	KeyElements           []string `json:"key_elements"`
	DetailedFunctionality string   `json:"detailed_functionality,omitempty"`
}

type Feature struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	TechnicalDetails string `json:"technical_details,omitempty"`
	UserInteraction  string `json:"user_interaction,omitempty"`
	Priority         string `json:"priority"`
}

type DesignRequirements struct {
	Style                       string `json:"style"`
	ColorScheme                 string `json:"color_scheme"`
	Typography                  string `json:"typography"`
	ResponsiveRequirements      string `json:"responsive_requirements"`
	AccessibilityConsiderations string `json:"accessibility_considerations,omitempty"`
}

type TechnicalSpecifications struct {
	Platform                string   `json:"platform"`
	Integrations            []string `json:"integrations"`
	PerformanceRequirements string   `json:"performance_requirements"`
	SecurityRequirements    string   `json:"security_requirements,omitempty"`
}

type SolutionOption struct {
	Name                  string `json:"name"`
	Description           string `json:"description"`
	IntegrationComplexity string `json:"integration_complexity"`
	PricingTier           string `json:"pricing_tier"`
	BestFor               string `json:"best_for"`
}

type ThirdPartySolution struct {
	Category           string           `json:"category"`
	RecommendedOptions []SolutionOption `json:"recommended_options"`
}

type Timeline struct {
	EstimatedDevelopmentTime string   `json:"estimated_development_time"`
	KeyMilestones            []string `json:"key_milestones"`
	PotentialChallenges      []string `json:"potential_challenges,omitempty"`
}

type MaintenanceRequirements struct {
	RegularUpdates       string `json:"regular_updates"`
	OngoingContent       string `json:"ongoing_content"`
	TechnicalMaintenance string `json:"technical_maintenance"`
}

// RequirementsDocument is the final structured specification produced by the
// generation stage. Immutable once produced; serializes to JSON losslessly.
type RequirementsDocument struct {
	WebsiteSummary          WebsiteSummary           `json:"website_summary"`
	Pages                   []Page                   `json:"pages"`
	Features                []Feature                `json:"features"`
	DesignRequirements      DesignRequirements       `json:"design_requirements"`
	TechnicalSpecifications TechnicalSpecifications  `json:"technical_specifications"`
	ThirdPartySolutions     []ThirdPartySolution     `json:"third_party_solutions,omitempty"`
	ContentRequirements     []string                 `json:"content_requirements"`
	Timeline                Timeline                 `json:"timeline"`
	MaintenanceRequirements *MaintenanceRequirements `json:"maintenance_requirements,omitempty"`
}

// RequirementsBreakdown is the first-stage output of the validated variant:
// a category-sectioned requirements listing with explicitly named gaps.
type RequirementsBreakdown struct {
	WebsiteName         string              `json:"website_name"`
	PrimaryPurpose      string              `json:"primary_purpose"`
	TargetAudience      string              `json:"target_audience"`
	Sections            map[string][]string `json:"sections"`
	KeyPages            []string            `json:"key_pages"`
	MissingInformation  []string            `json:"missing_information"`
	ImplementationTasks []string            `json:"implementation_tasks"`
	CompletionChecklist []string            `json:"completion_checklist"`
}

// CompletenessAssessment scores a breakdown and lists what is still missing
type CompletenessAssessment struct {
	CompletenessScore      int            `json:"completeness_score"`
	CriticalGaps           []string       `json:"critical_gaps"`
	SectionScores          map[string]int `json:"section_scores"`
	ImprovementSuggestions []string       `json:"improvement_suggestions"`
	AdditionalRequirements []string       `json:"additional_requirements"`
}

// RefinementQuestion is a follow-up in the validated variant. Free-form: the
// backend explains why the information matters instead of offering options.
type RefinementQuestion struct {
	Question   string `json:"question"`
	Category   string `json:"category"`
	Importance string `json:"importance"`
}

// RefinementQuestions wraps the follow-up list in the shape the backend returns
type RefinementQuestions struct {
	FollowUpQuestions []RefinementQuestion `json:"follow_up_questions"`
}
