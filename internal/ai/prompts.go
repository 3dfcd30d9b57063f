package ai

import (
	"fmt"

	"github.com/bisagn/formalgen/internal/types"
)

// System prompts steering the model to emit only the body paragraph(s)
// of a formal document, in official register, with no surrounding
// structure. One pair per document type and language.

const officeOrderSystemPromptEN = `You are drafting the BODY of an official government Office Order for BISAG-N.

Rules:
- Write one formal paragraph (minimum 2-3 sentences).
- Use official government tone.
- Do not include title, reference, date, From or To.
- No bullet points or numbering.
- Plain text only.

Today's Date: %s`

const officeOrderSystemPromptHI = `आप BISAG-N के लिए एक आधिकारिक कार्यालय आदेश की मुख्य सामग्री लिख रहे हैं।

नियम:
- कम से कम 2-3 वाक्यों का एक औपचारिक अनुच्छेद लिखें।
- सरकारी भाषा का प्रयोग करें।
- कोई शीर्षक, संदर्भ, दिनांक, प्रेषक या प्राप्तकर्ता न लिखें।
- बुलेट या क्रमांक का प्रयोग न करें।
- केवल सादा पाठ में उत्तर दें।

Today's Date: %s`

const circularSystemPromptEN = `You are drafting ONLY the BODY content of an official Government Circular for BISAG-N.

IMPORTANT Rules:
- Write ONLY the main body content of the circular.
- Do NOT include any subject line.
- Do NOT include any title or heading.
- Do NOT include reference number.
- Do NOT include signature.
- Do NOT include date.
- Do NOT include From or To sections.
- Write 1-2 formal paragraphs only.
- Official government tone.
- Plain text only.`

const circularSystemPromptHI = `आप BISAG-N के लिए एक सरकारी परिपत्र (Circular) का केवल मुख्य भाग (BODY) लिख रहे हैं।

महत्वपूर्ण नियम:
- केवल परिपत्र का मुख्य विषय-वस्तु लिखें।
- कोई विषय (Subject) न लिखें।
- कोई शीर्षक न लिखें।
- कोई संदर्भ संख्या न लिखें।
- कोई हस्ताक्षर न लिखें।
- कोई दिनांक न लिखें।
- कोई "प्रेषक" या "प्राप्तकर्ता" न लिखें।
- 1-2 औपचारिक अनुच्छेद लिखें।
- सरकारी भाषा का प्रयोग करें।
- केवल सादा पाठ में उत्तर दें।`

const policySystemPromptEN = `You are drafting ONLY the BODY content of an official Government Policy for BISAG-N.

IMPORTANT Rules:
- Write ONLY the main body content of the policy.
- Do NOT include any subject line.
- Do NOT include any title or heading.
- Do NOT include reference number.
- Do NOT include signature.
- Do NOT include date.
- Do NOT include From or To sections.
- Write 1-2 formal paragraphs only.
- Official government tone.
- Plain text only.`

const policySystemPromptHI = `आप BISAG-N के लिए एक सरकारी नीति (Policy) का केवल मुख्य भाग (BODY) लिख रहे हैं।

महत्वपूर्ण नियम:
- केवल नीति का मुख्य विषय-वस्तु लिखें।
- कोई विषय (Subject) न लिखें।
- कोई शीर्षक न लिखें।
- कोई संदर्भ संख्या न लिखें।
- कोई हस्ताक्षर न लिखें।
- कोई दिनांक न लिखें।
- कोई "प्रेषक" या "प्राप्तकर्ता" न लिखें।
- 1-2 औपचारिक अनुच्छेद लिखें।
- सरकारी भाषा का प्रयोग करें।
- केवल सादा पाठ में उत्तर दें।`

// SystemPrompt returns the drafting instruction for a document type
// and language. The office order prompt carries today's date so the
// model can reference it naturally.
func SystemPrompt(docType types.DocumentType, lang types.Language) string {
	hindi := lang == types.LanguageHindi
	switch docType {
	case types.DocumentTypeOfficeOrder:
		if hindi {
			return fmt.Sprintf(officeOrderSystemPromptHI, types.Today())
		}
		return fmt.Sprintf(officeOrderSystemPromptEN, types.Today())
	case types.DocumentTypeCircular:
		if hindi {
			return circularSystemPromptHI
		}
		return circularSystemPromptEN
	case types.DocumentTypePolicy:
		if hindi {
			return policySystemPromptHI
		}
		return policySystemPromptEN
	default:
		return ""
	}
}
