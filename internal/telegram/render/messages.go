package render

import (
	"fmt"
	"strings"

	"github.com/sitebrief/requirements-backend/internal/entity"
)

const (
	MsgWelcome = `👋 Hi! I turn a rough website idea into a structured requirements document.

How it works:
• Describe the website you want in your own words
• I ask a few follow-up questions about the gaps
• You get a full requirements document to download`

	MsgAskDescription = `📋 Tell me about the website you want to build.

A couple of sentences is enough, the follow-up questions will cover the rest.`

	MsgAnalyzing  = "🔍 Analyzing your description..."
	MsgGenerating = "⚙️ Generating the requirements document, this can take a minute..."

	MsgNoQuestions = "✨ Your description already covers everything I need."

	MsgAllAnswered = `✅ That was the last question.

Ready to generate the requirements document?`

	MsgNoSession      = "No active session. Use /start"
	MsgCancelConfirm  = "⚠️ Are you sure? All progress will be lost."
	MsgSessionClosed  = "Session closed. Use /start to begin a new one."
	MsgUnknownCommand = "❌ Unknown command. Use /start"

	ErrGeneric      = "❌ Something went wrong. Please try again or use /start"
	ErrInvalidState = "❌ I wasn't expecting that here. Use /start to begin again."
	ErrBackend      = "❌ The analysis service is unavailable right now. Please try again later."

	MsgHelp = `🤖 Bot commands:

/start - Start a new session
/help - Show this help
/cancel - Cancel the current session

How it works:
1. Describe the website you want
2. Answer a few follow-up questions (or skip them)
3. Generate and download the requirements document`
)

// Question renders one follow-up question with its position in the batch.
// Free-text questions invite a typed reply; choice questions rely on the
// attached keyboard.
func Question(q *entity.FollowUpQuestion, number, total int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "❓ Question %d of %d (%s)\n\n%s", number, total, q.Category, q.Question)

	if q.InputMode == entity.InputModeFreeText || len(q.Options) == 0 {
		sb.WriteString("\n\nReply with a text message.")
	} else if q.InputMode == entity.InputModeMultiChoice {
		sb.WriteString("\n\nToggle the options that apply, then press Done.")
	}

	return sb.String()
}

// Understood renders the analysis summary shown before the questions start
func Understood(analysis *entity.Analysis) string {
	var sb strings.Builder

	sb.WriteString("💡 Here is what I understood:\n")

	if analysis.Understood.Purpose != nil {
		fmt.Fprintf(&sb, "\n• Purpose: %s", *analysis.Understood.Purpose)
	}
	if analysis.Understood.Audience != nil {
		fmt.Fprintf(&sb, "\n• Audience: %s", *analysis.Understood.Audience)
	}
	if len(analysis.Understood.Features) > 0 {
		fmt.Fprintf(&sb, "\n• Features: %s", strings.Join(analysis.Understood.Features, ", "))
	}
	if analysis.Understood.DesignPreferences != nil {
		fmt.Fprintf(&sb, "\n• Design: %s", *analysis.Understood.DesignPreferences)
	}

	return sb.String()
}

// DocumentSummary renders a short overview of the generated document
func DocumentSummary(doc *entity.RequirementsDocument) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📋 %s\n\n%s\n", doc.WebsiteSummary.Name, doc.WebsiteSummary.Purpose)

	fmt.Fprintf(&sb, "\n📄 Pages (%d):", len(doc.Pages))
	for _, page := range doc.Pages {
		fmt.Fprintf(&sb, "\n• %s", page.Name)
	}

	fmt.Fprintf(&sb, "\n\n⚙️ Features (%d):", len(doc.Features))
	for _, feature := range doc.Features {
		fmt.Fprintf(&sb, "\n• %s (%s)", feature.Name, feature.Priority)
	}

	if doc.Timeline.EstimatedDevelopmentTime != "" {
		fmt.Fprintf(&sb, "\n\n⏱ Estimated time: %s", doc.Timeline.EstimatedDevelopmentTime)
	}

	sb.WriteString("\n\nPick a format to download the full document.")

	return sb.String()
}
