package diagnosis

import (
	"fmt"
	"strings"
)

// SystemPrompt is the system instruction sent with every diagnosis request.
const SystemPrompt = "You are a professional medical AI assistant providing differential diagnosis and medical recommendations. Always emphasize the importance of professional medical consultation."

// BuildPrompt renders a patient snapshot and symptom list into the diagnosis
// prompt. Pure function; optional fields degrade to "None reported" /
// "None provided".
func BuildPrompt(age int, gender string, medicalHistory []string, symptoms []Symptom, additionalInfo *string) string {
	details := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		detail := fmt.Sprintf("- %s (Severity: %d/10, Duration: %s", s.Description, s.Severity, s.Duration)
		if s.Location != nil {
			detail += fmt.Sprintf(", Location: %s", *s.Location)
		}
		detail += ")"
		details = append(details, detail)
	}
	symptomsText := strings.Join(details, "\n")

	historyText := "None reported"
	if len(medicalHistory) > 0 {
		historyText = strings.Join(medicalHistory, ", ")
	}

	infoText := "None provided"
	if additionalInfo != nil && *additionalInfo != "" {
		infoText = *additionalInfo
	}

	return fmt.Sprintf(`You are an experienced medical AI assistant specializing in differential diagnosis. Please analyze the following patient case and provide a comprehensive medical assessment.

Patient Information:
- Age: %d
- Gender: %s
- Medical History: %s

Current Symptoms:
%s

Additional Information: %s

Please provide:
1. DIFFERENTIAL DIAGNOSIS: List 3-5 most likely diagnoses ranked by probability
2. DETAILED ANALYSIS: Explain the reasoning for each potential diagnosis
3. RECOMMENDATIONS: Specific medical recommendations including:
   - Immediate actions needed
   - Further tests or examinations required
   - Treatment suggestions
   - Lifestyle modifications
4. SEVERITY ASSESSMENT: Rate overall severity (Low/Moderate/High/Critical)
5. FOLLOW-UP: Whether immediate medical attention is needed

Important: This is for educational/informational purposes. Always recommend consulting with healthcare professionals for proper medical evaluation and treatment.`,
		age, gender, historyText, symptomsText, infoText)
}
