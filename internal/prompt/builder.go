package prompt

import (
	"strings"

	"github.com/phrazzld/missive-api/internal/domain"
)

// TemplateEmailCustom is the ID under which builder-assembled templates
// render.
const TemplateEmailCustom = "email_custom"

const customBaseFragment = `You are an AI Email Marketing Expert with years of experience crafting engaging, professional emails.

SUBJECT: {subject}
REQUESTED TONE: {tone}
EMAIL LENGTH: {length} paragraphs

Please create a {tone} email that includes:
1. An attention-grabbing subject line that builds on the provided subject
2. A personalized greeting with [Name] placeholder
3. A body with exactly {length} paragraphs
4. A clear call-to-action
5. A professional sign-off`

const postscriptInstructionFragment = `6. A brief PS line that adds value or creates urgency`

const structureFragment = `The email should follow this structure:
---
Subject: [Enhanced Subject Line]

Dear [Name],

[Email body with exactly {length} paragraphs]

[Clear call-to-action with specific instructions]

[Professional sign-off],
[Company Name]`

const postscriptStructureFragment = `P.S. [Brief value-add or urgency statement]`

const closingFragment = `---

Keep the email concise, engaging, and focused on driving action. Use persuasive language throughout.`

// toneFragments holds the per-tone guidance blocks appended to the
// instruction list. The professional tone adds no extra guidance.
var toneFragments = map[domain.Tone]string{
	domain.ToneFormal: `Use formal language, avoid contractions, and maintain professional distance.
Address the recipient with proper titles and use industry-specific terminology where appropriate.`,
	domain.ToneFriendly: `Use a warm, conversational tone with a personal touch.
Include light humor where appropriate and focus on building relationship.`,
	domain.ToneUrgent: `Create a sense of urgency throughout the email.
Use time-sensitive language and emphasize limited availability or deadlines.`,
}

// BuildCustomTemplate assembles the customized email template for the
// given options. Assembly concatenates an ordered list of fragments, some
// selected by the options, joined by blank lines; identical options always
// produce a byte-identical body. Variable substitution happens later, at
// render time, through the returned Template.
func BuildCustomTemplate(tone domain.Tone, includePostscript bool) Template {
	fragments := []string{customBaseFragment}
	if includePostscript {
		fragments = append(fragments, postscriptInstructionFragment)
	}
	if guidance, ok := toneFragments[tone]; ok {
		fragments = append(fragments, guidance)
	}
	fragments = append(fragments, structureFragment)
	if includePostscript {
		fragments = append(fragments, postscriptStructureFragment)
	}
	fragments = append(fragments, closingFragment)

	return Template{
		ID:           TemplateEmailCustom,
		RequiredVars: []string{"subject", "tone", "length"},
		Body:         strings.Join(fragments, "\n\n"),
	}
}
