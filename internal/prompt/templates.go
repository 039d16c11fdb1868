package prompt

// Template IDs for the built-in email templates.
const (
	// TemplateEmailBase generates a complete email from a subject alone.
	TemplateEmailBase = "email_base"

	// TemplateAnalysis is step one of the analysis pipeline: it examines
	// the subject and produces guidance for the generation step.
	TemplateAnalysis = "email_analysis"

	// TemplateEmailFromAnalysis is step two of the analysis pipeline: it
	// generates the email using both the subject and the analysis text.
	TemplateEmailFromAnalysis = "email_from_analysis"

	// TemplateFollowUp generates a follow-up email threading the
	// session's conversation history.
	TemplateFollowUp = "email_followup"
)

const emailBaseBody = `You are an AI Email Marketing Expert with years of experience crafting engaging, professional emails. Your task is to generate a complete email based on the subject line provided.

SUBJECT: {subject}

Please create a comprehensive email that includes:
1. An attention-grabbing subject line that builds on the provided subject
2. A personalized greeting with [Name] placeholder
3. A concise but compelling body (2-3 paragraphs)
4. A clear call-to-action
5. A professional sign-off

Adjust the tone and style to match the context of the subject (formal, urgent, friendly, promotional, etc.).

The email should follow this structure:
---
Subject: [Enhanced Subject Line]

Dear [Name],

[First paragraph: Introduction and hook related to the subject]

[Second paragraph: Key details and value proposition]

[Third paragraph (optional): Additional information or urgency element]

[Clear call-to-action with specific instructions]

[Professional sign-off],
[Company Name]
---

Keep the email concise, engaging, and focused on driving action. Use persuasive language throughout.`

const analysisBody = `You're an expert email marketing analyst. First, analyze the following email subject to determine:
1. The primary purpose (promotional, informational, invitation, etc.)
2. The appropriate tone (formal, conversational, urgent, etc.)
3. The target audience characteristics
4. Key points that should be emphasized

SUBJECT: {subject}

Provide your analysis:`

const emailFromAnalysisBody = `You are an AI Email Marketing Expert with years of experience crafting engaging, professional emails.

SUBJECT: {subject}

Here's an analysis of the subject that you should use to guide your email creation:
{analysis}

Based on this analysis, create a comprehensive email that includes:
1. An attention-grabbing subject line that builds on the provided subject
2. A personalized greeting with [Name] placeholder
3. A concise but compelling body (2-3 paragraphs)
4. A clear call-to-action
5. A professional sign-off

The email should follow this structure:
---
Subject: [Enhanced Subject Line]

Dear [Name],

[First paragraph: Introduction and hook related to the subject]

[Second paragraph: Key details and value proposition]

[Third paragraph (optional): Additional information or urgency element]

[Clear call-to-action with specific instructions]

[Professional sign-off],
[Company Name]
---

Keep the email concise, engaging, and focused on driving action. Use persuasive language throughout.`

const followUpBody = `You are an AI Email Marketing Expert with years of experience crafting engaging, professional emails.

CURRENT SUBJECT: {subject}

PREVIOUS EMAIL HISTORY:
{chat_history}

Based on the current subject and the previous email history, create a follow-up email that:
1. References the previous communication
2. Maintains continuity in tone and messaging
3. Advances the conversation or objective
4. Includes all standard email components (greeting, body, CTA, sign-off)

The email should follow this structure:
---
Subject: [Follow-up Subject Line]

Dear [Name],

[First paragraph: Reference to previous communication]

[Second paragraph: New information or next steps]

[Third paragraph (optional): Additional details or urgency]

[Clear call-to-action with specific instructions]

[Professional sign-off],
[Company Name]
---

Keep the email concise, engaging, and focused on driving action.`

// DefaultRegistry returns a registry pre-loaded with the built-in email
// templates.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Template{
		ID:           TemplateEmailBase,
		RequiredVars: []string{"subject"},
		Body:         emailBaseBody,
	})
	r.Register(Template{
		ID:           TemplateAnalysis,
		RequiredVars: []string{"subject"},
		Body:         analysisBody,
	})
	r.Register(Template{
		ID:           TemplateEmailFromAnalysis,
		RequiredVars: []string{"subject", "analysis"},
		Body:         emailFromAnalysisBody,
	})
	r.Register(Template{
		ID:           TemplateFollowUp,
		RequiredVars: []string{"subject", "chat_history"},
		Body:         followUpBody,
	})
	return r
}
