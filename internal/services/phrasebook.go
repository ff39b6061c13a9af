package services

// phrasebook holds exact phrase translations keyed by "from-to". The reverse
// tables cover the greetings and questions a visitor is likely to hear back.
var phrasebook = map[string]map[string]string{
	"en-gu": englishToGujarati,
	"en-hi": englishToHindi,
	"gu-en": invertPhrases(englishToGujarati,
		"Hello", "How are you?", "Thank you", "Good morning", "Good evening",
		"Where is the market?", "How much does this cost?", "Can you help me?",
		"I need directions", "Where is the nearest village?"),
	"hi-en": invertPhrases(englishToHindi,
		"Hello", "How are you?", "Thank you", "Good morning", "Good evening",
		"Where is the market?", "How much does this cost?", "Can you help me?"),
}

var englishToGujarati = map[string]string{
	"Hello":                         "નમસ્તે",
	"How are you?":                  "તમે કેમ છો?",
	"Thank you":                     "આભાર",
	"Good morning":                  "સુપ્રભાત",
	"Good evening":                  "સુસાંજ",
	"Where is the market?":          "બજાર ક્યાં છે?",
	"How much does this cost?":      "આનું કેટલું થાય છે?",
	"Can you help me?":              "શું તમે મને મદદ કરી શકો છો?",
	"I need directions":             "મને દિશા જોઈએ છે",
	"Where is the nearest village?": "સૌથી નજીકનું ગામ ક્યાં છે?",
	"I am a tourist":                "હું એક પ્રવાસી છું",
	"Beautiful place":               "સુંદર જગ્યા",
	"Traditional culture":           "પરંપરાગત સંસ્કૃતિ",
	"Local food":                    "સ્થાનિક ખોરાક",
	"Handicrafts":                   "હસ્તકલા",
	"Please":                        "કૃપા કરીને",
	"Excuse me":                     "માફ કરશો",
	"Sorry":                         "માફ કરજો",
	"Yes":                           "હા",
	"No":                            "ના",
	"Water":                         "પાણી",
	"Food":                          "ખોરાક",
	"Hotel":                         "હોટેલ",
	"Restaurant":                    "રેસ્ટોરન્ટ",
	"Temple":                        "મંદિર",
	"Train":                         "ટ્રેન",
	"Bus":                           "બસ",
	"Auto":                          "ઓટો",
	"Taxi":                          "ટેક્સી",
}

var englishToHindi = map[string]string{
	"Hello":                         "नमस्ते",
	"How are you?":                  "आप कैसे हैं?",
	"Thank you":                     "धन्यवाद",
	"Good morning":                  "सुप्रभात",
	"Good evening":                  "शुभ संध्या",
	"Where is the market?":          "बाज़ार कहाँ है?",
	"How much does this cost?":      "इसकी कीमत क्या है?",
	"Can you help me?":              "क्या आप मेरी मदद कर सकते हैं?",
	"I need directions":             "मुझे दिशा चाहिए",
	"Where is the nearest village?": "निकटतम गांव कहाँ है?",
	"I am a tourist":                "मैं एक पर्यटक हूँ",
	"Beautiful place":               "सुंदर जगह",
	"Traditional culture":           "पारंपरिक संस्कृति",
	"Local food":                    "स्थानीय भोजन",
	"Handicrafts":                   "हस्तशिल्प",
	"Please":                        "कृपया",
	"Excuse me":                     "माफ़ कीजिये",
	"Sorry":                         "माफ़ करें",
	"Yes":                           "हाँ",
	"No":                            "नहीं",
	"Water":                         "पानी",
	"Food":                          "खाना",
	"Hotel":                         "होटल",
	"Restaurant":                    "रेस्तराँ",
	"Temple":                        "मंदिर",
	"Train":                         "ट्रेन",
	"Bus":                           "बस",
	"Auto":                          "ऑटो",
	"Taxi":                          "टैक्सी",
}

// invertPhrases maps the translations of the given English phrases back to
// English.
func invertPhrases(table map[string]string, phrases ...string) map[string]string {
	out := make(map[string]string, len(phrases))
	for _, en := range phrases {
		if translated, ok := table[en]; ok {
			out[translated] = en
		}
	}
	return out
}

// bracketLabels tag untranslated text with the target language.
var bracketLabels = map[string]string{
	"en-gu": "ગુજરાતી",
	"en-hi": "हिंदी",
	"gu-en": "English",
	"hi-en": "English",
}
