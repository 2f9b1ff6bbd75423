// Package locale holds the language-keyed fallback strings shown when the
// server does not supply a displayable error message.
package locale

// DefaultLanguage is assumed when the configured language has no entry.
const DefaultLanguage = "en"

var authFailed = map[string]string{
	"en": "Authentication failed. Please try again.",
	"hi": "प्रमाणीकरण विफल रहा। कृपया पुनः प्रयास करें।",
}

var serverUnreachable = map[string]string{
	"en": "Cannot reach the server. Please check your connection.",
	"hi": "सर्वर से संपर्क नहीं हो पा रहा है। कृपया अपना कनेक्शन जांचें।",
}

// AuthFailed returns the generic sign-in failure message for lang.
func AuthFailed(lang string) string {
	if msg, ok := authFailed[lang]; ok {
		return msg
	}
	return authFailed[DefaultLanguage]
}

// ServerUnreachable returns the connectivity failure message for lang.
func ServerUnreachable(lang string) string {
	if msg, ok := serverUnreachable[lang]; ok {
		return msg
	}
	return serverUnreachable[DefaultLanguage]
}
